// Package handler provides HTTP request handlers.
package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/devsecops/devsecops-app/internal/model"
)

// Handler serves the router-level fallbacks.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, model.ErrorResponse{Error: model.MsgNotFound})
}

// MethodNotAllowed handles known paths requested with an unsupported method.
// These are reported as 404 so clients only ever see 400, 401, 404 or 500.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.NotFound(w, r)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}
