package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services.
// Handlers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// Error is a classified error whose message is safe to show to clients
type Error struct {
	Kind    error
	Message string
}

// NewError creates a classified error of the given kind
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
