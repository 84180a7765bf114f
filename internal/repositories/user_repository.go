package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

const userColumns = `id, username, password_hash, user_type, address, email, is_deleted`

// userRepository implements the users collection on MySQL
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanUser builds a validated user record from a row
func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	var role string
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&role,
		&user.Address,
		&user.Email,
		&user.IsDeleted,
	); err != nil {
		return nil, err
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", user.ID, err)
	}
	user.Role = parsed

	return user, nil
}

// Create inserts a new user and assigns its ID.
//
// A username already held by any user, soft-deleted ones included, results in models.ErrConflict.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, user_type, address, email, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, FALSE)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, id, user.Username, user.PasswordHash, user.Role.String(), user.Address, user.Email)
	if isDuplicateEntry(err) {
		return models.NewError(models.ErrConflict, "username already exist")
	}
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	user.IsDeleted = false
	return nil
}

// GetByUsername retrieves a user by exact username, soft-deleted users included.
// Usernames are never reused, so at most one row matches.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = ?
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewError(models.ErrNotFound, "Member not found")
	}
	if err != nil {
		r.logger.Error("failed to get user by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetActiveByID retrieves a user that is not soft-deleted
func (r *userRepository) GetActiveByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = ? AND is_deleted = FALSE
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewError(models.ErrNotFound, "Member not found")
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ExistsByUsername checks if any user, soft-deleted ones included, holds the username
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		r.logger.Error("failed to check username existence", zap.Error(err), zap.String("username", username))
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// ListByRole retrieves all users of a role, soft-deleted users included
func (r *userRepository) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_type = ?
		ORDER BY username
	`

	rows, err := r.db.QueryContext(ctx, query, role.String())
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err), zap.String("role", role.String()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logger.Error("failed to scan user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateProfile sets username, address and email of an active user.
// The role column is never touched.
func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = ?, address = ?, email = ?
		WHERE id = ? AND is_deleted = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Address, user.Email, user.ID)
	if isDuplicateEntry(err) {
		return models.NewError(models.ErrConflict, "username already exist")
	}
	if err != nil {
		r.logger.Error("failed to update user", zap.Error(err), zap.String("id", user.ID))
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	return checkAffected(rowsAffected, models.ErrNotFound, "Member not found")
}

// SoftDelete flags an active user as deleted
func (r *userRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE users SET is_deleted = TRUE WHERE id = ? AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	return checkAffected(rowsAffected, models.ErrNotFound, "Member not found")
}
