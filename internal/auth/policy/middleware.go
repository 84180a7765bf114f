package policy

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// Middleware returns a handler wrapper that enforces req before calling next.
// The resolved user is available to next through UserFromContext.
func (g *Gate) Middleware(req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := g.Authorize(r.Context(), BearerToken(r), req)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
			case errors.Is(err, ErrUnauthenticated):
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
			case errors.Is(err, ErrForbidden):
				g.logger.Info("access denied",
					zap.String("path", r.URL.Path),
					zap.String("requirement", req.String()),
				)
				writeError(w, http.StatusForbidden, "User not allowed to perform this action.")
			default:
				g.logger.Error("failed to authorize request", zap.String("path", r.URL.Path), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// It returns an empty string when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	scheme, value, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(value)
}

// WithUser stores the authorized user in ctx
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the user stored by the gate
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
