package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/devsecops/devsecops-app/internal/model"
)

// writeError writes the single-field JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, model.ErrorResponse{Error: message})
}

// handleError maps an error to its HTTP status.
// Validation failures are reported with their fixed message; anything else
// is an internal fault, logged in full and hidden from the client.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, model.MsgInvalidInput)
	case errors.Is(err, model.ErrInvalidEmail):
		writeError(w, r, http.StatusBadRequest, model.MsgInvalidEmail)
	default:
		logger.Error("internal server error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, http.StatusInternalServerError, model.MsgInternalServer)
	}
}
