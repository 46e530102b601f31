package middleware

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/devsecops/devsecops-app/internal/model"
)

// writeError writes the single-field JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{Error: message})
}
