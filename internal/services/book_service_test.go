package services

import (
	"context"
	"testing"
	"time"

	"github.com/libraryservice/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Unix(1700000000, 0)

func newTestBookService(bookRepo *mockBookRepository, logRepo *mockBookLogRepository) *bookService {
	logger, _ := zap.NewDevelopment()
	svc := NewBookService(bookRepo, logRepo, logger)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestNewBookService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	bookRepo := &mockBookRepository{}
	logRepo := &mockBookLogRepository{}

	svc := NewBookService(bookRepo, logRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, bookRepo, svc.bookRepo)
	assert.Equal(t, logRepo, svc.logRepo)
	assert.Equal(t, logger, svc.logger)
	assert.NotNil(t, svc.now)
}

func TestBookService_CreateBook(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.BookRequest
		bookRepo      *mockBookRepository
		expectedError error
		anyError      bool
	}{
		{
			name:     "success",
			req:      &models.BookRequest{Name: " Dune ", Description: "desert", Author: "Herbert", Genre: "sci-fi"},
			bookRepo: &mockBookRepository{},
		},
		{
			name:          "missing name",
			req:           &models.BookRequest{Name: "  ", Author: "Herbert"},
			bookRepo:      &mockBookRepository{},
			expectedError: models.ErrInvalidInput,
		},
		{
			name:     "repository error",
			req:      &models.BookRequest{Name: "Dune"},
			bookRepo: &mockBookRepository{createErr: errDatabase},
			anyError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestBookService(tt.bookRepo, &mockBookLogRepository{})

			book, err := svc.CreateBook(context.Background(), tt.req)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, book)
			case tt.anyError:
				assert.ErrorIs(t, err, errDatabase)
				assert.Nil(t, book)
			default:
				require.NoError(t, err)
				assert.Equal(t, "b-new", book.ID)
				assert.Equal(t, "Dune", book.Name)
				assert.Equal(t, fixedNow.Unix(), book.CreatedTS)
				assert.Equal(t, models.BookStatusAvailable, book.Status)
			}
		})
	}
}

func TestBookService_ListBooks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{books: []models.Book{
			{ID: "b-1", Name: "Dune", Status: models.BookStatusAvailable},
			{ID: "b-2", Name: "Emma", Status: models.BookStatusBorrowed, BorrowedByID: "u-1", BorrowedByName: "alice", BorrowedTS: 5},
		}}, &mockBookLogRepository{})

		items, err := svc.ListBooks(context.Background())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b-1", items[0].ID)
		assert.Equal(t, "alice", items[1].BorrowedBy)
		assert.Equal(t, "u-1", items[1].BorrowByID)
	})

	t.Run("empty catalogue", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{}, &mockBookLogRepository{})

		items, err := svc.ListBooks(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{err: errDatabase}, &mockBookLogRepository{})

		items, err := svc.ListBooks(context.Background())

		assert.ErrorIs(t, err, errDatabase)
		assert.Nil(t, items)
	})
}

func TestBookService_GetBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{book: &models.Book{
			ID: "b-1", Name: "Dune", Description: "desert", Author: "Herbert", Genre: "sci-fi",
		}}, &mockBookLogRepository{})

		details, err := svc.GetBook(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Equal(t, &models.BookDetails{ID: "b-1", Name: "Dune", Description: "desert", Author: "Herbert", Genre: "sci-fi"}, details)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{}, &mockBookLogRepository{})

		details, err := svc.GetBook(context.Background(), "b-1")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, details)
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bookRepo := &mockBookRepository{}
		svc := newTestBookService(bookRepo, &mockBookLogRepository{})

		err := svc.UpdateBook(context.Background(), "b-1", &models.BookRequest{Name: "Dune Messiah", Author: "Herbert"})

		require.NoError(t, err)
		require.NotNil(t, bookRepo.updated)
		assert.Equal(t, "b-1", bookRepo.updated.ID)
		assert.Equal(t, "Dune Messiah", bookRepo.updated.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		bookRepo := &mockBookRepository{}
		svc := newTestBookService(bookRepo, &mockBookLogRepository{})

		err := svc.UpdateBook(context.Background(), "b-1", &models.BookRequest{})

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		assert.Nil(t, bookRepo.updated)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{updateErr: models.NewError(models.ErrNotFound, "Book not found")}, &mockBookLogRepository{})

		err := svc.UpdateBook(context.Background(), "b-1", &models.BookRequest{Name: "Dune"})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{}, &mockBookLogRepository{})
		assert.NoError(t, svc.DeleteBook(context.Background(), "b-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestBookService(&mockBookRepository{deleteErr: models.NewError(models.ErrNotFound, "Book not found")}, &mockBookLogRepository{})
		assert.ErrorIs(t, svc.DeleteBook(context.Background(), "b-1"), models.ErrNotFound)
	})
}

func TestBookService_BorrowReturn(t *testing.T) {
	alice := &models.User{ID: "u-1", Username: "alice", Role: models.RoleMember}
	book := &models.Book{ID: "b-1", Name: "Dune", Status: models.BookStatusAvailable}

	tests := []struct {
		name           string
		borrow         bool
		bookRepo       *mockBookRepository
		logRepo        *mockBookLogRepository
		expectedAction models.BookAction
		expectedError  error
		expectLog      bool
	}{
		{
			name:           "borrow available book",
			borrow:         true,
			bookRepo:       &mockBookRepository{book: book},
			logRepo:        &mockBookLogRepository{},
			expectedAction: models.BookActionBorrow,
			expectLog:      true,
		},
		{
			name:           "return borrowed book",
			borrow:         false,
			bookRepo:       &mockBookRepository{book: book},
			logRepo:        &mockBookLogRepository{},
			expectedAction: models.BookActionReturn,
			expectLog:      true,
		},
		{
			name:          "book not found",
			borrow:        true,
			bookRepo:      &mockBookRepository{},
			logRepo:       &mockBookLogRepository{},
			expectedError: models.ErrNotFound,
		},
		{
			name:          "book already borrowed",
			borrow:        true,
			bookRepo:      &mockBookRepository{book: book, borrowErr: models.NewError(models.ErrConflict, "Book is not available")},
			logRepo:       &mockBookLogRepository{},
			expectedError: models.ErrConflict,
		},
		{
			name:          "return of book borrowed by someone else",
			borrow:        false,
			bookRepo:      &mockBookRepository{book: book, returnErr: models.NewError(models.ErrConflict, "Book is not borrowed by this member")},
			logRepo:       &mockBookLogRepository{},
			expectedError: models.ErrConflict,
		},
		{
			name:           "log write failure does not fail the request",
			borrow:         true,
			bookRepo:       &mockBookRepository{book: book},
			logRepo:        &mockBookLogRepository{createErr: errDatabase},
			expectedAction: models.BookActionBorrow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestBookService(tt.bookRepo, tt.logRepo)

			action, err := svc.BorrowReturn(context.Background(), "b-1", tt.borrow, alice)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, action)
				assert.Empty(t, tt.logRepo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAction, action)
			assert.Equal(t, fixedNow.Unix(), tt.bookRepo.markedTS)
			assert.Equal(t, alice, tt.bookRepo.markedBy)
			if tt.borrow {
				assert.Equal(t, 1, tt.bookRepo.borrowCalls)
				assert.Zero(t, tt.bookRepo.returnCalls)
			} else {
				assert.Equal(t, 1, tt.bookRepo.returnCalls)
				assert.Zero(t, tt.bookRepo.borrowCalls)
			}
			if tt.expectLog {
				require.Len(t, tt.logRepo.created, 1)
				assert.Equal(t, models.BookLog{
					ID:        "l-new",
					BookID:    "b-1",
					UserID:    "u-1",
					Username:  "alice",
					Action:    tt.expectedAction,
					CreatedTS: fixedNow.Unix(),
				}, tt.logRepo.created[0])
			}
		})
	}
}
