package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/devsecops/devsecops-app/internal/metrics"
	"github.com/devsecops/devsecops-app/internal/model"
)

// UserHandler handles HTTP requests for user operations.
// It holds no mutable state; created users are echoed, never stored.
type UserHandler struct {
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(logger *slog.Logger, recorder metrics.Recorder) *UserHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserHandler{
		logger:  logger,
		metrics: recorder,
	}
}

// List handles GET /api/v1/users.
// The query string is deliberately never read.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, model.SeedUsers())
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.decodeUser(r)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrInvalidEmail) {
			h.metrics.IncValidationFailure()
			h.logger.Debug("user validation failed", slog.String("error", err.Error()))
		}
		handleError(w, r, h.logger, err)
		return
	}

	h.metrics.IncUserCreated()
	h.logger.Info("user_created",
		slog.Int("user_id", user.ID),
		slog.String("name", user.Name),
		slog.String("email", user.Email),
	)

	writeJSON(w, r, http.StatusCreated, user)
}

// decodeUser parses the request body and validates it into a User.
// The body must hold exactly one JSON value; trailing bytes other than
// whitespace make it malformed.
func (h *UserHandler) decodeUser(r *http.Request) (model.User, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return model.User{}, model.ErrInvalidInput
	}

	dec := json.NewDecoder(r.Body)

	var in model.CreateUserInput
	if err := dec.Decode(&in); err != nil {
		return model.User{}, fmt.Errorf("decode body: %v: %w", err, model.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.User{}, fmt.Errorf("decode body: trailing data: %w", model.ErrInvalidInput)
	}

	return model.NewUser(in)
}
