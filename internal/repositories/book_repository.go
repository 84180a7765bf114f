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

const bookColumns = `id, name, description, author, genre, status, created_ts, borrowed_ts, returned_ts, borrowed_by_id, borrowed_by_name, is_deleted`

// bookRepository implements the books collection on MySQL
type bookRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *sql.DB, logger *zap.Logger) *bookRepository {
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func scanBook(row scanner) (*models.Book, error) {
	book := &models.Book{}
	var status string
	var borrowedByID sql.NullString
	if err := row.Scan(
		&book.ID,
		&book.Name,
		&book.Description,
		&book.Author,
		&book.Genre,
		&status,
		&book.CreatedTS,
		&book.BorrowedTS,
		&book.ReturnedTS,
		&borrowedByID,
		&book.BorrowedByName,
		&book.IsDeleted,
	); err != nil {
		return nil, err
	}

	switch models.BookStatus(status) {
	case models.BookStatusAvailable, models.BookStatusBorrowed:
		book.Status = models.BookStatus(status)
	default:
		return nil, fmt.Errorf("book %s: unknown status %q", book.ID, status)
	}
	book.BorrowedByID = borrowedByID.String

	return book, nil
}

// Create inserts a new available book and assigns its ID
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (id, name, description, author, genre, status, created_ts, borrowed_ts, returned_ts, borrowed_by_name, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, '', FALSE)
	`

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, book.Name, book.Description, book.Author, book.Genre,
		string(models.BookStatusAvailable), book.CreatedTS); err != nil {
		r.logger.Error("failed to create book", zap.Error(err))
		return fmt.Errorf("failed to create book: %w", err)
	}

	book.ID = id
	book.Status = models.BookStatusAvailable
	return nil
}

// ListActive retrieves all books that are not soft-deleted
func (r *bookRepository) ListActive(ctx context.Context) ([]models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE is_deleted = FALSE
		ORDER BY created_ts, id
	`

	return r.list(ctx, query)
}

// ListByBorrower retrieves all books whose last borrower is the given user
func (r *bookRepository) ListByBorrower(ctx context.Context, userID string) ([]models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE borrowed_by_id = ?
		ORDER BY borrowed_ts DESC, id
	`

	return r.list(ctx, query, userID)
}

func (r *bookRepository) list(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list books", zap.Error(err))
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			r.logger.Error("failed to scan book", zap.Error(err))
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

// GetActiveByID retrieves a book that is not soft-deleted
func (r *bookRepository) GetActiveByID(ctx context.Context, id string) (*models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE id = ? AND is_deleted = FALSE
	`

	book, err := scanBook(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewError(models.ErrNotFound, "Book not found")
	}
	if err != nil {
		r.logger.Error("failed to get book by id", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

// UpdateDetails sets the descriptive fields of an active book
func (r *bookRepository) UpdateDetails(ctx context.Context, book *models.Book) error {
	query := `
		UPDATE books
		SET name = ?, description = ?, author = ?, genre = ?
		WHERE id = ? AND is_deleted = FALSE
	`

	return r.exec(ctx, query, models.ErrNotFound, "Book not found",
		book.Name, book.Description, book.Author, book.Genre, book.ID)
}

// SoftDelete flags an active book as deleted
func (r *bookRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE books SET is_deleted = TRUE WHERE id = ? AND is_deleted = FALSE`

	return r.exec(ctx, query, models.ErrNotFound, "Book not found", id)
}

// MarkBorrowed flips an available book to borrowed.
//
// The status check is part of the update, so two concurrent borrowers cannot both win.
// The loser gets models.ErrConflict.
func (r *bookRepository) MarkBorrowed(ctx context.Context, id string, borrower *models.User, ts int64) error {
	query := `
		UPDATE books
		SET status = ?, borrowed_by_id = ?, borrowed_by_name = ?, borrowed_ts = ?, returned_ts = 0
		WHERE id = ? AND is_deleted = FALSE AND status = ?
	`

	return r.exec(ctx, query, models.ErrConflict, "Book is not available",
		string(models.BookStatusBorrowed), borrower.ID, borrower.Username, ts, id, string(models.BookStatusAvailable))
}

// MarkReturned flips a book borrowed by the given user back to available.
// A book that is not borrowed by that user yields models.ErrConflict.
func (r *bookRepository) MarkReturned(ctx context.Context, id string, borrower *models.User, ts int64) error {
	query := `
		UPDATE books
		SET status = ?, returned_ts = ?
		WHERE id = ? AND is_deleted = FALSE AND status = ? AND borrowed_by_id = ?
	`

	return r.exec(ctx, query, models.ErrConflict, "Book is not borrowed by this member",
		string(models.BookStatusAvailable), ts, id, string(models.BookStatusBorrowed), borrower.ID)
}

func (r *bookRepository) exec(ctx context.Context, query string, kind error, message string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update book", zap.Error(err))
		return fmt.Errorf("failed to update book: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	return checkAffected(rowsAffected, kind, message)
}
