package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// BookService is the interface that wraps methods for the book catalogue and lending.
type BookService interface {
	// Method CreateBook adds a new available book.
	//
	// If the request has no name, a models.ErrInvalidInput error is returned.
	CreateBook(ctx context.Context, req *models.BookRequest) (*models.Book, error)
	// Method ListBooks returns all books that are not soft-deleted.
	ListBooks(ctx context.Context) ([]models.BookListItem, error)
	// Method GetBook returns the details of a book that is not soft-deleted.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	GetBook(ctx context.Context, id string) (*models.BookDetails, error)
	// Method UpdateBook replaces name, description, author and genre of a book.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	UpdateBook(ctx context.Context, id string, req *models.BookRequest) error
	// Method DeleteBook soft-deletes a book.
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	DeleteBook(ctx context.Context, id string) error
	// Method BorrowReturn borrows ("borrow" true) or returns ("borrow" false) a book for "member".
	//
	// If no such book exists, a models.ErrNotFound error is returned.
	// If the book is not in the expected state, a models.ErrConflict error is returned.
	BorrowReturn(ctx context.Context, id string, borrow bool, member *models.User) (models.BookAction, error)
}

// BookHandler handles HTTP requests for books
type BookHandler struct {
	BaseHandler
	bookService BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService BookService, logger *zap.Logger) *BookHandler {
	return &BookHandler{
		BaseHandler: BaseHandler{logger: logger},
		bookService: bookService,
	}
}

// RegisterRoutes registers all book handler routes
func (h *BookHandler) RegisterRoutes(r chi.Router, authenticated, librarianOnly, memberOnly Middleware) {
	r.With(authenticated).Get("/books", h.ListBooks)
	r.With(librarianOnly).Post("/books", h.CreateBook)
	r.With(librarianOnly).Get("/books/{book_id}", h.GetBook)
	r.With(librarianOnly).Put("/books/{book_id}", h.UpdateBook)
	r.With(librarianOnly).Delete("/books/{book_id}", h.DeleteBook)
	r.With(memberOnly).Post("/books/{book_id}/borrow-return/{borrow_status}", h.BorrowReturn)
}

// ListBooks handles GET /books
// @Summary List books
// @Description List all books that are not deleted
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.BookListItem
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to list books")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string][]models.BookListItem{"books": books})
}

// CreateBook handles POST /books
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BookRequest true "Book"
// @Success 201 {object} map[string]string "Book added successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create book")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Book added successfully",
		"id":      book.ID,
	})
}

// GetBook handles GET /books/{book_id}
// @Summary Get a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 200 {object} map[string]models.BookDetails
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books/{book_id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.GetBook(r.Context(), chi.URLParam(r, "book_id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get book")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]*models.BookDetails{"book": book})
}

// UpdateBook handles PUT /books/{book_id}
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Param request body models.BookRequest true "Book"
// @Success 200 {object} map[string]string "Updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books/{book_id} [put]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.bookService.UpdateBook(r.Context(), chi.URLParam(r, "book_id"), &req); err != nil {
		h.respondServiceError(w, err, "failed to update book")
		return
	}

	h.respondMessage(w, http.StatusOK, "Updated successfully")
}

// DeleteBook handles DELETE /books/{book_id}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Success 200 {object} map[string]string "Deleted successfully"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books/{book_id} [delete]
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.bookService.DeleteBook(r.Context(), chi.URLParam(r, "book_id")); err != nil {
		h.respondServiceError(w, err, "failed to delete book")
		return
	}

	h.respondMessage(w, http.StatusOK, "Deleted successfully")
}

// BorrowReturn handles POST /books/{book_id}/borrow-return/{borrow_status}
// @Summary Borrow or return a book
// @Description borrow_status true borrows the book, false returns it
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param book_id path string true "Book ID"
// @Param borrow_status path bool true "true to borrow, false to return"
// @Success 201 {object} map[string]string "Borrowed successfully"
// @Failure 400 {object} map[string]string "Book is not available"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /books/{book_id}/borrow-return/{borrow_status} [post]
func (h *BookHandler) BorrowReturn(w http.ResponseWriter, r *http.Request) {
	borrow, err := strconv.ParseBool(chi.URLParam(r, "borrow_status"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "borrow_status must be true or false")
		return
	}

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	action, err := h.bookService.BorrowReturn(r.Context(), chi.URLParam(r, "book_id"), borrow, user)
	if err != nil {
		h.respondServiceError(w, err, "failed to borrow or return book")
		return
	}

	message := "Returned successfully"
	if action == models.BookActionBorrow {
		message = "Borrowed successfully"
	}
	h.respondMessage(w, http.StatusCreated, message)
}
