// Package middleware provides HTTP middleware for the devsecops-app API.
package middleware

import (
	"net/http"
)

// SecurityHeaders is the fixed header set applied to every response.
var SecurityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'self'",
}

// Security returns a middleware that applies security headers to all responses.
// This middleware should be applied early in the chain, outside of Recoverer,
// so recovered panics and router 404s carry the headers too.
//
// Headers are set before the handler runs and set again when the status line
// is written, overwriting anything a handler put there.
//
// Headers applied:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - X-XSS-Protection: 1; mode=block
//   - Strict-Transport-Security: max-age=31536000; includeSubDomains
//   - Content-Security-Policy: default-src 'self'
func Security() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			applySecurityHeaders(w.Header())

			next.ServeHTTP(&securityHeaderWriter{ResponseWriter: w}, r)
		})
	}
}

func applySecurityHeaders(h http.Header) {
	for name, value := range SecurityHeaders {
		h.Set(name, value)
	}
}

// securityHeaderWriter re-applies the security headers right before the
// status line goes out.
type securityHeaderWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *securityHeaderWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		applySecurityHeaders(w.Header())
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *securityHeaderWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *securityHeaderWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// MaxBodySize returns a middleware that limits request body size.
// Reads past the limit fail, which handlers report as invalid input.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
