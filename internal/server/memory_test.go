package server

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/libraryservice/backend/internal/models"
)

// memoryUsers is an in-memory users collection
type memoryUsers struct {
	mu    sync.Mutex
	seq   int
	users []*models.User
}

func (m *memoryUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.NewError(models.ErrNotFound, "Member not found")
}

func (m *memoryUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return models.NewError(models.ErrConflict, "username already exist")
		}
	}
	m.seq++
	user.ID = "u-" + strconv.Itoa(m.seq)
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *memoryUsers) SoftDelete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id && !u.IsDeleted {
			u.IsDeleted = true
			return nil
		}
	}
	return models.NewError(models.ErrNotFound, "Member not found")
}

func (m *memoryUsers) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []models.User{}
	for _, u := range m.users {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *memoryUsers) GetActiveByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id && !u.IsDeleted {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.NewError(models.ErrNotFound, "Member not found")
}

func (m *memoryUsers) UpdateProfile(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == user.ID && !u.IsDeleted {
			u.Username, u.Address, u.Email = user.Username, user.Address, user.Email
			return nil
		}
	}
	return models.NewError(models.ErrNotFound, "Member not found")
}

// memoryBooks is an in-memory books collection
type memoryBooks struct {
	mu    sync.Mutex
	seq   int
	books []*models.Book
}

func (m *memoryBooks) Create(ctx context.Context, book *models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	book.ID = "b-" + strconv.Itoa(m.seq)
	book.Status = models.BookStatusAvailable
	copied := *book
	m.books = append(m.books, &copied)
	return nil
}

func (m *memoryBooks) ListActive(ctx context.Context) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	books := []models.Book{}
	for _, b := range m.books {
		if !b.IsDeleted {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (m *memoryBooks) ListByBorrower(ctx context.Context, userID string) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	books := []models.Book{}
	for _, b := range m.books {
		if b.BorrowedByID == userID {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (m *memoryBooks) find(id string) *models.Book {
	for _, b := range m.books {
		if b.ID == id && !b.IsDeleted {
			return b
		}
	}
	return nil
}

func (m *memoryBooks) GetActiveByID(ctx context.Context, id string) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b := m.find(id); b != nil {
		copied := *b
		return &copied, nil
	}
	return nil, models.NewError(models.ErrNotFound, "Book not found")
}

func (m *memoryBooks) UpdateDetails(ctx context.Context, book *models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.find(book.ID)
	if b == nil {
		return models.NewError(models.ErrNotFound, "Book not found")
	}
	b.Name, b.Description, b.Author, b.Genre = book.Name, book.Description, book.Author, book.Genre
	return nil
}

func (m *memoryBooks) SoftDelete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.find(id)
	if b == nil {
		return models.NewError(models.ErrNotFound, "Book not found")
	}
	b.IsDeleted = true
	return nil
}

func (m *memoryBooks) MarkBorrowed(ctx context.Context, id string, borrower *models.User, ts int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.find(id)
	if b == nil || b.Status != models.BookStatusAvailable {
		return models.NewError(models.ErrConflict, "Book is not available")
	}
	b.Status = models.BookStatusBorrowed
	b.BorrowedByID, b.BorrowedByName, b.BorrowedTS, b.ReturnedTS = borrower.ID, borrower.Username, ts, 0
	return nil
}

func (m *memoryBooks) MarkReturned(ctx context.Context, id string, borrower *models.User, ts int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.find(id)
	if b == nil || b.Status != models.BookStatusBorrowed || b.BorrowedByID != borrower.ID {
		return models.NewError(models.ErrConflict, "Book is not borrowed by this member")
	}
	b.Status = models.BookStatusAvailable
	b.ReturnedTS = ts
	return nil
}

// memoryLogs is an in-memory book_borrow_logs collection
type memoryLogs struct {
	mu      sync.Mutex
	entries []models.BookLog
}

func (m *memoryLogs) Create(ctx context.Context, entry *models.BookLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = "l-" + strconv.Itoa(len(m.entries)+1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryLogs) ListByUser(ctx context.Context, userID string) ([]models.BookLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := []models.BookLog{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			entries = append(entries, m.entries[i])
		}
	}
	return entries, nil
}

// pinger is a configurable health check target
type pinger struct {
	err error
}

func (p pinger) PingContext(ctx context.Context) error {
	return p.err
}
