package models

import (
	"errors"
	"strings"
)

// Error kinds. Every error returned by the services unwraps to one of these.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")
)

// DomainError is a rule violation with a user-facing message and a kind.
type DomainError struct {
	kind error
	msg  string
}

func newDomainError(kind error, msg string) *DomainError {
	return &DomainError{kind: kind, msg: msg}
}

func (e *DomainError) Error() string { return e.msg }

// Unwrap returns the error kind so errors.Is(err, ErrConflict) works.
func (e *DomainError) Unwrap() error { return e.kind }

var (
	ErrUserNotFound   = newDomainError(ErrNotFound, "User not found")
	ErrBookNotFound   = newDomainError(ErrNotFound, "Book not found")
	ErrGenreNotFound  = newDomainError(ErrNotFound, "Genre not found")
	ErrBorrowNotFound = newDomainError(ErrNotFound, "Borrow record not found")
	ErrRatingNotFound = newDomainError(ErrNotFound, "Rating not found")

	ErrDuplicateRating = newDomainError(ErrConflict, "User has already rated this book")
	ErrBookUnavailable = newDomainError(ErrConflict, "Book not available")
	ErrAlreadyReturned = newDomainError(ErrConflict, "Book already returned")
	ErrEmailTaken      = newDomainError(ErrConflict, "Email already registered")
	ErrGenreExists     = newDomainError(ErrConflict, "Genre already exists")
)

// Field error reasons.
const (
	ReasonMissing = "missing"
	ReasonRange   = "range"
	ReasonFormat  = "format"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Reason  string
	Message string
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Fields []FieldError
}

// Missing returns the names of required fields that were absent.
func (e *ValidationError) Missing() []string {
	var names []string
	for _, f := range e.Fields {
		if f.Reason == ReasonMissing {
			names = append(names, f.Field)
		}
	}
	return names
}

// FieldNames returns the names of all rejected fields in order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// Error reports missing fields first; range and format problems follow.
func (e *ValidationError) Error() string {
	var parts []string
	if missing := e.Missing(); len(missing) > 0 {
		parts = append(parts, "Missing fields: "+strings.Join(missing, ", "))
	}
	for _, f := range e.Fields {
		if f.Reason != ReasonMissing {
			parts = append(parts, f.Message)
		}
	}
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
