package models

import "time"

// BorrowRecordDB represents a loan of one book to one user
type BorrowRecordDB struct {
	ID         int64      `db:"id"`          // Primary key
	UserID     int64      `db:"user_id"`     // Borrowing user
	BookID     int64      `db:"book_id"`     // Borrowed book
	BorrowDate time.Time  `db:"borrow_date"` // Set at creation
	DueDate    time.Time  `db:"due_date"`    // Required on creation
	ReturnDate *time.Time `db:"return_date"` // Nil while the loan is open
}

// IsOpen reports whether the book has not been returned yet.
func (b *BorrowRecordDB) IsOpen() bool {
	return b.ReturnDate == nil
}

// BorrowFilter narrows borrow listings by equality. Nil fields are ignored.
type BorrowFilter struct {
	UserID *int64
	BookID *int64
	Open   *bool
}

// CreateBorrowRequest represents the JSON body for borrowing a book
// swagger:model CreateBorrowRequest
type CreateBorrowRequest struct {
	// Borrowing user
	// required: true
	// example: 1
	UserID *int64 `json:"user_id" validate:"required,gt=0"`

	// Book to borrow
	// required: true
	// example: 2
	BookID *int64 `json:"book_id" validate:"required,gt=0"`

	// Due date (YYYY-MM-DD or RFC 3339)
	// required: true
	// example: 2025-02-14
	DueDate *string `json:"due_date" validate:"required,isodate"`
}

// BorrowRecordResponse is the transport record of a loan
// swagger:model BorrowRecordResponse
type BorrowRecordResponse struct {
	ID         int64   `json:"id" example:"1"`
	UserID     int64   `json:"user_id" example:"1"`
	BookID     int64   `json:"book_id" example:"2"`
	BorrowDate *string `json:"borrow_date" example:"2025-01-31T10:00:00Z"`
	DueDate    *string `json:"due_date" example:"2025-02-14T00:00:00Z"`
	ReturnDate *string `json:"return_date"`
}

func NewBorrowRecordResponse(b *BorrowRecordDB) BorrowRecordResponse {
	return BorrowRecordResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		BookID:     b.BookID,
		BorrowDate: formatTimestamp(&b.BorrowDate),
		DueDate:    formatTimestamp(&b.DueDate),
		ReturnDate: formatTimestamp(b.ReturnDate),
	}
}

func NewBorrowRecordResponses(records []BorrowRecordDB) []BorrowRecordResponse {
	out := make([]BorrowRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, NewBorrowRecordResponse(&records[i]))
	}
	return out
}
