package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// bookLogRepository implements the book_borrow_logs collection on MySQL
type bookLogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBookLogRepository creates a new book log repository
func NewBookLogRepository(db *sql.DB, logger *zap.Logger) *bookLogRepository {
	return &bookLogRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a log entry and assigns its ID
func (r *bookLogRepository) Create(ctx context.Context, entry *models.BookLog) error {
	query := `
		INSERT INTO book_borrow_logs (id, book_id, user_id, username, action, created_ts)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, entry.BookID, entry.UserID, entry.Username,
		string(entry.Action), entry.CreatedTS); err != nil {
		r.logger.Error("failed to create book log", zap.Error(err))
		return fmt.Errorf("failed to create book log: %w", err)
	}

	entry.ID = id
	return nil
}

// ListByUser retrieves the log entries of a user, newest first
func (r *bookLogRepository) ListByUser(ctx context.Context, userID string) ([]models.BookLog, error) {
	query := `
		SELECT id, book_id, user_id, username, action, created_ts
		FROM book_borrow_logs
		WHERE user_id = ?
		ORDER BY created_ts DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list book logs", zap.Error(err), zap.String("userId", userID))
		return nil, fmt.Errorf("failed to list book logs: %w", err)
	}
	defer rows.Close()

	entries := []models.BookLog{}
	for rows.Next() {
		var entry models.BookLog
		var action string
		if err := rows.Scan(&entry.ID, &entry.BookID, &entry.UserID, &entry.Username, &action, &entry.CreatedTS); err != nil {
			return nil, fmt.Errorf("failed to scan book log: %w", err)
		}
		entry.Action = models.BookAction(action)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book logs: %w", err)
	}

	return entries, nil
}
