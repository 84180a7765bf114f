package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/libraryservice/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookLogRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, logger := setupMockDB(t)
		repo := NewBookLogRepository(db, logger)
		mock.ExpectExec(q("INSERT INTO book_borrow_logs")).
			WithArgs(sqlmock.AnyArg(), "b-1", "u-1", "alice", "BORROW", int64(100)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		entry := &models.BookLog{BookID: "b-1", UserID: "u-1", Username: "alice", Action: models.BookActionBorrow, CreatedTS: 100}
		err := repo.Create(context.Background(), entry)

		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		db, mock, logger := setupMockDB(t)
		repo := NewBookLogRepository(db, logger)
		mock.ExpectExec(q("INSERT INTO book_borrow_logs")).WillReturnError(errors.New("database error"))

		entry := &models.BookLog{BookID: "b-1"}
		assert.Error(t, repo.Create(context.Background(), entry))
		assert.Empty(t, entry.ID)
	})
}

func TestBookLogRepository_ListByUser(t *testing.T) {
	columns := []string{"id", "book_id", "user_id", "username", "action", "created_ts"}

	t.Run("success", func(t *testing.T) {
		db, mock, logger := setupMockDB(t)
		repo := NewBookLogRepository(db, logger)
		rows := sqlmock.NewRows(columns).
			AddRow("l-2", "b-1", "u-1", "alice", "RETURN", int64(200)).
			AddRow("l-1", "b-1", "u-1", "alice", "BORROW", int64(100))
		mock.ExpectQuery(q("FROM book_borrow_logs WHERE user_id = ? ORDER BY created_ts DESC")).
			WithArgs("u-1").
			WillReturnRows(rows)

		entries, err := repo.ListByUser(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Equal(t, []models.BookLog{
			{ID: "l-2", BookID: "b-1", UserID: "u-1", Username: "alice", Action: models.BookActionReturn, CreatedTS: 200},
			{ID: "l-1", BookID: "b-1", UserID: "u-1", Username: "alice", Action: models.BookActionBorrow, CreatedTS: 100},
		}, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock, logger := setupMockDB(t)
		repo := NewBookLogRepository(db, logger)
		mock.ExpectQuery(q("FROM book_borrow_logs")).WillReturnRows(sqlmock.NewRows(columns))

		entries, err := repo.ListByUser(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NotNil(t, entries)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, logger := setupMockDB(t)
		repo := NewBookLogRepository(db, logger)
		mock.ExpectQuery(q("FROM book_borrow_logs")).WillReturnError(errors.New("database error"))

		entries, err := repo.ListByUser(context.Background(), "u-1")

		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
