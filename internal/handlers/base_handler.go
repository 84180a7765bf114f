package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/libraryservice/backend/internal/auth/policy"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// Middleware is the shape of the access guards applied to routes
type Middleware = func(http.Handler) http.Handler

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondMessage sends a {"message": ...} JSON response
func (h *BaseHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps a service error to a status code.
// Classified errors expose their message, anything else is logged and hidden behind a 500.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, operation string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	var domainErr *models.Error
	if status == http.StatusInternalServerError || !errors.As(err, &domainErr) {
		h.logger.Error(operation, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Debug(operation, zap.Error(err), zap.Int("status", status))
	h.respondError(w, status, domainErr.Message)
}

// currentUser returns the user placed in the context by the access gate
func (h *BaseHandler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := policy.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("user not found in context")
		h.respondError(w, http.StatusUnauthorized, "Could not validate credentials")
		return nil, false
	}
	return user, true
}
