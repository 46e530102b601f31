package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/devsecops/devsecops-app/internal/metrics"
	"github.com/devsecops/devsecops-app/internal/model"
)

// Recoverer is a middleware that recovers from panics.
// It logs the panic with its stack and returns a generic 500 JSON error;
// no fault detail reaches the client.
func Recoverer(logger *slog.Logger, recorder metrics.Recorder) func(http.Handler) http.Handler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					recorder.IncPanicRecovered()

					logger.Error("panic recovered",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())),
					)

					writeError(w, r, http.StatusInternalServerError, model.MsgInternalServer)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
