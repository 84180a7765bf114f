// Package identity maps token subjects and login credentials to stored users
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps the user lookup needed by the resolver
type UserRepository interface {
	// Method GetByUsername retrieves a user by exact username, soft-deleted users included.
	//
	// Usernames are never reused, so at most one user matches.
	// If no such user exists, models.ErrNotFound is returned.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// PasswordVerifier is the interface that wraps password verification
type PasswordVerifier interface {
	Verify(plaintext, hash string) bool
}

// Resolver loads persisted users for verified identities
type Resolver struct {
	users    UserRepository
	verifier PasswordVerifier
	logger   *zap.Logger
}

// NewResolver creates a new identity resolver
func NewResolver(users UserRepository, verifier PasswordVerifier, logger *zap.Logger) *Resolver {
	return &Resolver{
		users:    users,
		verifier: verifier,
		logger:   logger,
	}
}

// Resolve looks the user up by username.
//
// The resolver does not filter on the soft-delete flag, callers apply that policy.
// A nil user with a nil error means no such user exists.
func (r *Resolver) Resolve(ctx context.Context, username string) (*models.User, error) {
	user, err := r.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// AuthenticateWithPassword returns the user matching the credentials.
//
// Unknown users, soft-deleted users and wrong passwords all fail closed with a nil user and nil error.
// Only store failures are returned as errors.
func (r *Resolver) AuthenticateWithPassword(ctx context.Context, username, plaintext string) (*models.User, error) {
	user, err := r.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		r.logger.Debug("login rejected: no active user", zap.String("username", username))
		return nil, nil
	}
	if !r.verifier.Verify(plaintext, user.PasswordHash) {
		r.logger.Debug("login rejected: password mismatch", zap.String("username", username))
		return nil, nil
	}
	return user, nil
}
