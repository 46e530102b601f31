package handler

import (
	"net/http"
)

// ServiceInfo is the static service description returned by the info endpoint.
type ServiceInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// InfoHandler serves the service info endpoint.
type InfoHandler struct {
	info ServiceInfo
}

// NewInfoHandler creates a new InfoHandler. The info is read-only afterwards.
func NewInfoHandler(info ServiceInfo) *InfoHandler {
	return &InfoHandler{info: info}
}

// Info handles GET /api/v1/info.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.info)
}
