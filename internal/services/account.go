package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/libraryservice/backend/internal/models"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxPasswordBytes is the longest password bcrypt accepts
const maxPasswordBytes = 72

// AccountRepository is the interface that wraps the user writes shared by signup and member creation
type AccountRepository interface {
	// Method ExistsByUsername checks if any user holds the username.
	//
	// Soft-deleted users count too: tokens carry only the username, so a reused name would revive them.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Method Create inserts a new user and assigns its ID.
	//
	// "user" parameter carries the already hashed password.
	//
	// If any user already holds the username, a models.ErrConflict error is returned.
	Create(ctx context.Context, user *models.User) error
}

// PasswordHasher is the interface that wraps password hashing
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// validateUsername trims and checks a username
func validateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", models.NewError(models.ErrInvalidInput, "username is required")
	}
	return username, nil
}

// validateEmail trims and checks an email address
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if !emailRegex.MatchString(email) {
		return "", models.NewError(models.ErrInvalidInput, "invalid email format")
	}
	return email, nil
}

// validatePassword checks that a password can be hashed
func validatePassword(password string) error {
	if password == "" {
		return models.NewError(models.ErrInvalidInput, "password is required")
	}
	if len(password) > maxPasswordBytes {
		return models.NewError(models.ErrInvalidInput, "password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

// createAccount validates the request, hashes the password and stores a new active user.
//
// "defaultRole" is used when the request does not name a user_type, an empty value makes it required.
func createAccount(
	ctx context.Context,
	users AccountRepository,
	hasher PasswordHasher,
	req *models.SignupRequest,
	defaultRole models.Role,
) (*models.User, error) {
	username, err := validateUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}

	role := defaultRole
	if req.UserType != "" || defaultRole == "" {
		role, err = models.ParseRole(req.UserType)
		if err != nil {
			return nil, err
		}
	}

	exists, err := users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, models.NewError(models.ErrConflict, "username already exist")
	}

	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Address:      strings.TrimSpace(req.Address),
		Email:        email,
	}
	// The unique key on usernames still guards against a concurrent signup
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
