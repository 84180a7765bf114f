package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned by Login for unknown users, deleted users and wrong passwords alike
var ErrInvalidCredentials = models.NewError(models.ErrInvalidInput, "Incorrect username or password")

// AuthUserRepository is the interface that wraps methods for user data access needed by the auth service
type AuthUserRepository interface {
	AccountRepository
	// Method SoftDelete flags an active user as deleted.
	//
	// "id" parameter is the ID of the user to delete.
	//
	// If no active user has such ID, a models.ErrNotFound error is returned.
	SoftDelete(ctx context.Context, id string) error
}

// Authenticator is the interface that wraps credential checks
type Authenticator interface {
	// Method AuthenticateWithPassword returns the active user matching the credentials.
	//
	// A nil user with a nil error means the credentials are not valid.
	AuthenticateWithPassword(ctx context.Context, username, plaintext string) (*models.User, error)
}

// TokenIssuer is the interface that wraps access token issuing
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// authService implements the login, signup and self-service account operations
type authService struct {
	userRepo      AuthUserRepository
	authenticator Authenticator
	hasher        PasswordHasher
	tokens        TokenIssuer
	logger        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo AuthUserRepository,
	authenticator Authenticator,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:      userRepo,
		authenticator: authenticator,
		hasher:        hasher,
		tokens:        tokens,
		logger:        logger,
	}
}

// Login checks the credentials and issues an access token for the user.
// The username is trimmed the same way signup stores it.
func (s *authService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.authenticator.AuthenticateWithPassword(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

// Signup creates a new account and logs it in
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.LoginResponse, error) {
	user, err := createAccount(ctx, s.userRepo, s.hasher, req, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("userId", user.ID), zap.String("role", user.Role.String()))
	return s.respond(user)
}

// DeleteMyAccount soft-deletes the calling user.
// Tokens already issued to the user stop working on their next request.
func (s *authService) DeleteMyAccount(ctx context.Context, user *models.User) error {
	if err := s.userRepo.SoftDelete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted by owner", zap.String("userId", user.ID))
	return nil
}

func (s *authService) respond(user *models.User) (*models.LoginResponse, error) {
	accessToken, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &models.LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		UserType:    user.Role,
		AccessToken: accessToken,
	}, nil
}
