package models

// BookAction is the kind of a borrow log entry
type BookAction string

const (
	BookActionBorrow BookAction = "BORROW"
	BookActionReturn BookAction = "RETURN"
)

// BookLog is an entry of the book_borrow_logs collection
type BookLog struct {
	ID        string     `json:"id"`
	BookID    string     `json:"book_id"`
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Action    BookAction `json:"action"`
	CreatedTS int64      `json:"created_ts"`
}

// MemberHistory is the body of GET /members/{member_id}/history
type MemberHistory struct {
	Books []BookListItem `json:"books"`
	Logs  []BookLog      `json:"logs"`
}
