package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// BookRepository is the interface that wraps methods for Book table data access
type BookRepository interface {
	// Method Create inserts a new available book and assigns its ID.
	Create(ctx context.Context, book *models.Book) error
	// Method ListActive retrieves all books that are not soft-deleted.
	ListActive(ctx context.Context) ([]models.Book, error)
	// Method GetActiveByID retrieves a book that is not soft-deleted.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	GetActiveByID(ctx context.Context, id string) (*models.Book, error)
	// Method UpdateDetails sets name, description, author and genre of an active book.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	UpdateDetails(ctx context.Context, book *models.Book) error
	// Method SoftDelete flags an active book as deleted.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	SoftDelete(ctx context.Context, id string) error
	// Method MarkBorrowed flips an available book to borrowed by "borrower" at "ts".
	//
	// If the book is not available at the time of the update, a models.ErrConflict error is returned.
	MarkBorrowed(ctx context.Context, id string, borrower *models.User, ts int64) error
	// Method MarkReturned flips a book borrowed by "borrower" back to available at "ts".
	//
	// If the book is not borrowed by "borrower" at the time of the update, a models.ErrConflict error is returned.
	MarkReturned(ctx context.Context, id string, borrower *models.User, ts int64) error
}

// BookLogRepository is the interface that wraps methods for book_borrow_logs writes
type BookLogRepository interface {
	Create(ctx context.Context, entry *models.BookLog) error
}

// bookService implements the book catalogue and lending operations
type bookService struct {
	bookRepo BookRepository
	logRepo  BookLogRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewBookService creates a new book service
func NewBookService(bookRepo BookRepository, logRepo BookLogRepository, logger *zap.Logger) *bookService {
	return &bookService{
		bookRepo: bookRepo,
		logRepo:  logRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateBook adds a new available book to the catalogue
func (s *bookService) CreateBook(ctx context.Context, req *models.BookRequest) (*models.Book, error) {
	book, err := bookFromRequest(req)
	if err != nil {
		return nil, err
	}
	book.CreatedTS = s.now().Unix()

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("book created", zap.String("bookId", book.ID))
	return book, nil
}

// ListBooks returns all books that are not soft-deleted
func (s *bookService) ListBooks(ctx context.Context) ([]models.BookListItem, error) {
	books, err := s.bookRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return toBookListItems(books), nil
}

// GetBook returns the details of an active book
func (s *bookService) GetBook(ctx context.Context, id string) (*models.BookDetails, error) {
	book, err := s.bookRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	details := book.Details()
	return &details, nil
}

// UpdateBook replaces the descriptive fields of an active book
func (s *bookService) UpdateBook(ctx context.Context, id string, req *models.BookRequest) error {
	book, err := bookFromRequest(req)
	if err != nil {
		return err
	}
	book.ID = id

	if err := s.bookRepo.UpdateDetails(ctx, book); err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

// DeleteBook soft-deletes an active book
func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	if err := s.bookRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	s.logger.Info("book deleted", zap.String("bookId", id))
	return nil
}

// BorrowReturn borrows the book for "member" when "borrow" is true and returns it otherwise.
//
// The book must exist and not be soft-deleted. Borrowing requires an available book,
// returning requires the book to be currently borrowed by the same member.
// Every successful transition is recorded in the borrow log.
func (s *bookService) BorrowReturn(ctx context.Context, id string, borrow bool, member *models.User) (models.BookAction, error) {
	if _, err := s.bookRepo.GetActiveByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to get book: %w", err)
	}

	ts := s.now().Unix()
	action := models.BookActionReturn
	var err error
	if borrow {
		action = models.BookActionBorrow
		err = s.bookRepo.MarkBorrowed(ctx, id, member, ts)
	} else {
		err = s.bookRepo.MarkReturned(ctx, id, member, ts)
	}
	if err != nil {
		return "", fmt.Errorf("failed to %s book: %w", strings.ToLower(string(action)), err)
	}

	entry := &models.BookLog{
		BookID:    id,
		UserID:    member.ID,
		Username:  member.Username,
		Action:    action,
		CreatedTS: ts,
	}
	// The book row is already updated, a lost log entry must not fail the request
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to write borrow log",
			zap.Error(err),
			zap.String("bookId", id),
			zap.String("userId", member.ID),
			zap.String("action", string(action)),
		)
	}

	return action, nil
}

func bookFromRequest(req *models.BookRequest) (*models.Book, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewError(models.ErrInvalidInput, "name is required")
	}

	return &models.Book{
		Name:        name,
		Description: req.Description,
		Author:      strings.TrimSpace(req.Author),
		Genre:       strings.TrimSpace(req.Genre),
	}, nil
}

func toBookListItems(books []models.Book) []models.BookListItem {
	items := make([]models.BookListItem, 0, len(books))
	for i := range books {
		items = append(items, books[i].ListItem())
	}
	return items
}
