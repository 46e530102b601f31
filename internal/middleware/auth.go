package middleware

import (
	"log/slog"
	"net/http"

	"github.com/devsecops/devsecops-app/internal/auth"
	"github.com/devsecops/devsecops-app/internal/metrics"
	"github.com/devsecops/devsecops-app/internal/model"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger     *slog.Logger
	Credential *auth.Credential
	Metrics    metrics.Recorder
}

// RequireAPIKey returns a middleware that gates the wrapped handler behind
// the shared API key in the X-API-Key header.
//
// Missing or mismatched keys get 401 {"error":"Unauthorized"} and the wrapped
// handler never runs. On a match the handler's response passes through untouched.
func RequireAPIKey(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(auth.APIKeyHeader)

			reason := ""
			switch {
			case key == "":
				reason = metrics.ReasonMissingKey
			case !cfg.Credential.Matches(key):
				reason = metrics.ReasonInvalidKey
			}

			if reason != "" {
				noteAuthOutcome(r.Context(), reason)
				recorder.IncAuthFailure(reason)
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w, r)
				return
			}

			noteAuthOutcome(r.Context(), AuthGranted)
			cfg.Logger.Debug("authentication successful",
				slog.String("ip", r.RemoteAddr),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.String("request_id", GetRequestID(r.Context())),
			)

			next.ServeHTTP(w, r)
		})
	}
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusUnauthorized, model.MsgUnauthorized)
}
