package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// AuthGranted is the access-log outcome for a request that passed the API key gate.
// Rejections are logged with the metrics reason (missing_key, invalid_key).
const AuthGranted = "granted"

// accessEntryKey is the context key for the in-flight access log entry.
const accessEntryKey contextKey = "access_entry"

// accessEntry collects per-request facts that only inner middleware knows.
// It is owned by a single request goroutine.
type accessEntry struct {
	auth string
}

// noteAuthOutcome records the gate decision on the request's access entry.
// It is a no-op when the request is not being access-logged.
func noteAuthOutcome(ctx context.Context, outcome string) {
	if e, ok := ctx.Value(accessEntryKey).(*accessEntry); ok {
		e.auth = outcome
	}
}

// statusRecorder captures what the service actually sent back.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
	sent    bool
}

func wrapResponseWriter(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.sent {
		return
	}
	sr.status = code
	sr.sent = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.sent {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.written += n
	return n, err
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// levelFor maps a response status to the access log level:
// 5xx is an error, 4xx a warning, anything else info.
func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Logger returns a middleware that writes one access log line per request.
// Only the path is logged; the query string and request headers (and with
// them the API key) never are. Requests that went through the API key gate
// carry an "auth" attribute with the gate's outcome.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			entry := &accessEntry{}
			r = r.WithContext(context.WithValue(r.Context(), accessEntryKey, entry))

			rec := wrapResponseWriter(w)
			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("request_id", GetRequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status_code", rec.status),
				slog.Int("bytes", rec.written),
				slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
			}
			if entry.auth != "" {
				attrs = append(attrs, slog.String("auth", entry.auth))
			}

			logger.LogAttrs(r.Context(), levelFor(rec.status), "http request", attrs...)
		})
	}
}
