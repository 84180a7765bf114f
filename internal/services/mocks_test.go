package services

import (
	"context"
	"errors"

	"github.com/libraryservice/backend/internal/models"
)

// mockUserRepository is a mock implementation of AuthUserRepository and MemberRepository
type mockUserRepository struct {
	user         *models.User
	users        []models.User
	err          error
	exists       bool
	existsErr    error
	createErr    error
	updateErr    error
	deleteErr    error
	created      *models.User
	updated      *models.User
	deletedID    string
	existsCalled bool
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.existsCalled = true
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "u-new"
	m.created = user
	return nil
}

func (m *mockUserRepository) SoftDelete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserRepository) GetActiveByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, models.NewError(models.ErrNotFound, "Member not found")
	}
	copied := *m.user
	return &copied, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = user
	return nil
}

// mockHasher is a mock implementation of PasswordHasher
type mockHasher struct {
	err error
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "hashed:" + plaintext, nil
}

// mockAuthenticator is a mock implementation of Authenticator
type mockAuthenticator struct {
	user     *models.User
	err      error
	username string
	calls    int
}

func (m *mockAuthenticator) AuthenticateWithPassword(ctx context.Context, username, plaintext string) (*models.User, error) {
	m.calls++
	m.username = username
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	err     error
	subject string
}

func (m *mockTokenIssuer) Issue(subject string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.subject = subject
	return "token-for-" + subject, nil
}

// mockBookRepository is a mock implementation of BookRepository and BorrowedBookRepository
type mockBookRepository struct {
	book        *models.Book
	books       []models.Book
	err         error
	createErr   error
	updateErr   error
	deleteErr   error
	borrowErr   error
	returnErr   error
	created     *models.Book
	updated     *models.Book
	markedTS    int64
	markedBy    *models.User
	borrowCalls int
	returnCalls int
}

func (m *mockBookRepository) Create(ctx context.Context, book *models.Book) error {
	if m.createErr != nil {
		return m.createErr
	}
	book.ID = "b-new"
	book.Status = models.BookStatusAvailable
	m.created = book
	return nil
}

func (m *mockBookRepository) ListActive(ctx context.Context) ([]models.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.books, nil
}

func (m *mockBookRepository) ListByBorrower(ctx context.Context, userID string) ([]models.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.books, nil
}

func (m *mockBookRepository) GetActiveByID(ctx context.Context, id string) (*models.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.book == nil {
		return nil, models.NewError(models.ErrNotFound, "Book not found")
	}
	return m.book, nil
}

func (m *mockBookRepository) UpdateDetails(ctx context.Context, book *models.Book) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = book
	return nil
}

func (m *mockBookRepository) SoftDelete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockBookRepository) MarkBorrowed(ctx context.Context, id string, borrower *models.User, ts int64) error {
	m.borrowCalls++
	if m.borrowErr != nil {
		return m.borrowErr
	}
	m.markedTS = ts
	m.markedBy = borrower
	return nil
}

func (m *mockBookRepository) MarkReturned(ctx context.Context, id string, borrower *models.User, ts int64) error {
	m.returnCalls++
	if m.returnErr != nil {
		return m.returnErr
	}
	m.markedTS = ts
	m.markedBy = borrower
	return nil
}

// mockBookLogRepository is a mock implementation of BookLogRepository and BookLogReader
type mockBookLogRepository struct {
	entries   []models.BookLog
	err       error
	createErr error
	created   []models.BookLog
}

func (m *mockBookLogRepository) Create(ctx context.Context, entry *models.BookLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.ID = "l-new"
	m.created = append(m.created, *entry)
	return nil
}

func (m *mockBookLogRepository) ListByUser(ctx context.Context, userID string) ([]models.BookLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

var errDatabase = errors.New("database error")
