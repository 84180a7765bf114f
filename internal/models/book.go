package models

// BookStatus describes whether a book can be borrowed
type BookStatus string

const (
	BookStatusAvailable BookStatus = "AVAILABLE"
	BookStatusBorrowed  BookStatus = "BORROWED"
)

// Book represents a book in the books collection.
// Timestamps are unix seconds, 0 means "never".
type Book struct {
	ID             string
	Name           string
	Description    string
	Author         string
	Genre          string
	Status         BookStatus
	CreatedTS      int64
	BorrowedTS     int64
	ReturnedTS     int64
	BorrowedByID   string
	BorrowedByName string
	IsDeleted      bool
}

// BookRequest is the body of POST /books and PUT /books/{book_id}
type BookRequest struct {
	Name        string `json:"name" example:"Angels & demons"`
	Description string `json:"description" example:"Fiction books"`
	Author      string `json:"author" example:"Dan brown"`
	Genre       string `json:"genre" example:"Fiction"`
}

// BookListItem is a single entry of GET /books
type BookListItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Author     string     `json:"author"`
	Genre      string     `json:"genre"`
	Status     BookStatus `json:"status"`
	BorrowedBy string     `json:"borrowed_by"`
	BorrowByID string     `json:"borrow_by_id"`
	BorrowedTS int64      `json:"borrowed_ts"`
	ReturnedTS int64      `json:"returned_ts"`
}

// BookDetails is the body of GET /books/{book_id}
type BookDetails struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
}

// ListItem converts a book into its list representation
func (b *Book) ListItem() BookListItem {
	return BookListItem{
		ID:         b.ID,
		Name:       b.Name,
		Author:     b.Author,
		Genre:      b.Genre,
		Status:     b.Status,
		BorrowedBy: b.BorrowedByName,
		BorrowByID: b.BorrowedByID,
		BorrowedTS: b.BorrowedTS,
		ReturnedTS: b.ReturnedTS,
	}
}

// Details converts a book into its detailed representation
func (b *Book) Details() BookDetails {
	return BookDetails{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Author:      b.Author,
		Genre:       b.Genre,
	}
}
