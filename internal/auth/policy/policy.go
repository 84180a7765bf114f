// Package policy implements the role gate applied to every protected operation.
//
// A request passes the gate only if it carries a valid bearer token, the token
// subject resolves to an active user, and that user satisfies the operation's
// Requirement. Decisions are never cached: each request is re-resolved.
package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/libraryservice/backend/internal/auth/token"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrUnauthenticated is returned when there is no valid token or no active user behind it
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrForbidden is returned when the user is known but lacks the required role
	ErrForbidden = errors.New("user not allowed to perform this action")
)

// TokenVerifier is the interface that wraps access token verification
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// IdentityResolver is the interface that wraps the user lookup by token subject
type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (*models.User, error)
}

type requirementKind int

const (
	kindAuthenticated requirementKind = iota
	kindRole
	kindSelf
)

// Requirement describes who may invoke an operation
type Requirement struct {
	kind requirementKind
	role models.Role
}

// RequireAuthenticated admits any active user
func RequireAuthenticated() Requirement {
	return Requirement{kind: kindAuthenticated}
}

// RequireRole admits active users holding exactly the given role
func RequireRole(role models.Role) Requirement {
	return Requirement{kind: kindRole, role: role}
}

// RequireSelf admits an active user of the given role acting on their own identity.
//
// The gate checks the role only. Self-scoping is the handler's part: it must act on
// the user stored in the request context, never on an id taken from the request.
func RequireSelf(role models.Role) Requirement {
	return Requirement{kind: kindSelf, role: role}
}

// String describes the requirement for logs
func (r Requirement) String() string {
	switch r.kind {
	case kindAuthenticated:
		return "authenticated"
	case kindRole:
		return "role:" + r.role.String()
	case kindSelf:
		return "self:" + r.role.String()
	default:
		return "unknown"
	}
}

// Gate authorizes requests against requirements
type Gate struct {
	tokens     TokenVerifier
	identities IdentityResolver
	logger     *zap.Logger
}

// NewGate creates a new access gate
func NewGate(tokens TokenVerifier, identities IdentityResolver, logger *zap.Logger) *Gate {
	return &Gate{
		tokens:     tokens,
		identities: identities,
		logger:     logger,
	}
}

// Authorize runs the gate for a raw bearer token and returns the resolved user.
//
// ErrUnauthenticated is returned for a missing or invalid token, or when the subject
// no longer resolves to an active user with exactly that username. ErrForbidden is returned on a role mismatch.
// Store failures are returned wrapped and match neither sentinel.
func (g *Gate) Authorize(ctx context.Context, bearer string, req Requirement) (*models.User, error) {
	if bearer == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := g.tokens.Verify(bearer)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := g.identities.Resolve(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	// Tokens outlive soft-deletes, so a deleted user is treated as unknown
	if user == nil || user.IsDeleted {
		return nil, ErrUnauthenticated
	}
	// A store matching loosely (case, padding) must not hand out another account
	if user.Username != claims.Subject {
		g.logger.Warn("token subject resolved to a different username", zap.String("userId", user.ID))
		return nil, ErrUnauthenticated
	}

	switch req.kind {
	case kindAuthenticated:
		return user, nil
	case kindRole, kindSelf:
		if !hasRole(user, req.role) {
			return nil, ErrForbidden
		}
		return user, nil
	default:
		return nil, ErrForbidden
	}
}

// hasRole reports whether the user holds exactly the required role
func hasRole(user *models.User, required models.Role) bool {
	switch required {
	case models.RoleLibrarian:
		return user.Role == models.RoleLibrarian
	case models.RoleMember:
		return user.Role == models.RoleMember
	default:
		return false
	}
}
