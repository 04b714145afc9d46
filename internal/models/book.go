package models

import "time"

// BookDB represents a book row joined with its genre name
type BookDB struct {
	ID            int64      `db:"id"`             // Primary key
	Title         string     `db:"title"`          // Book title
	Author        string     `db:"author"`         // Author name
	PublishedYear *time.Time `db:"published_year"` // Publication date, optional
	Description   *string    `db:"description"`    // Free text, optional
	GenreID       *int64     `db:"genre_id"`       // Genre reference, optional
	GenreName     *string    `db:"genre_name"`     // Joined from genres
	IsAvailable   bool       `db:"is_available"`   // Cached "no open borrow" flag
	LastUpdated   time.Time  `db:"last_updated"`   // Last modification timestamp
}

// NewBook holds the normalized fields of a book to insert.
type NewBook struct {
	Title         string
	Author        string
	PublishedYear *time.Time
	Description   *string
	GenreID       *int64
}

// BookFilter narrows book listings by equality. Nil fields are ignored.
type BookFilter struct {
	GenreID   *int64
	Author    *string
	Available *bool
}

// CreateBookRequest represents the JSON body for adding a book
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// Title
	// required: true
	// example: Think Big
	Title string `json:"title" validate:"required,notblank,max=200"`

	// Author
	// required: true
	// example: Ben Carson
	Author string `json:"author" validate:"required,notblank,max=100"`

	// Publication date (YYYY-MM-DD)
	// example: 1982-01-01
	PublishedYear *string `json:"published_year" validate:"omitnil,isodate"`

	// Description
	// example: A motivational book.
	Description *string `json:"description"`

	// Genre identifier
	// example: 3
	GenreID *int64 `json:"genre_id" validate:"omitnil,gt=0"`
}

// UpdateBookRequest carries the mutable book fields. Any other JSON key is ignored.
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// example: Think Bigger
	Title *string `json:"title" validate:"omitnil,notblank,max=200"`

	// example: Ben Carson
	Author *string `json:"author" validate:"omitnil,notblank,max=100"`

	// example: Revised edition.
	Description *string `json:"description"`

	// example: 2
	GenreID *int64 `json:"genre_id" validate:"omitnil,gt=0"`
}

// BookResponse is the transport record of a book
// swagger:model BookResponse
type BookResponse struct {
	ID            int64   `json:"id" example:"1"`
	Title         string  `json:"title" example:"Think Big"`
	Author        string  `json:"author" example:"Ben Carson"`
	PublishedYear *string `json:"published_year" example:"1982-01-01"`
	Description   *string `json:"description"`
	GenreID       *int64  `json:"genre_id" example:"3"`
	Genre         *string `json:"genre" example:"Philosophy"`
	IsAvailable   bool    `json:"is_available" example:"true"`
	LastUpdated   *string `json:"last_updated" example:"2025-01-31T10:00:00Z"`
}

// NewBookResponse maps a book row to its transport record, exposing both the
// genre reference and the genre name.
func NewBookResponse(b *BookDB) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedYear: formatDate(b.PublishedYear),
		Description:   b.Description,
		GenreID:       b.GenreID,
		Genre:         b.GenreName,
		IsAvailable:   b.IsAvailable,
		LastUpdated:   formatTimestamp(&b.LastUpdated),
	}
}

func NewBookResponses(books []BookDB) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, NewBookResponse(&books[i]))
	}
	return out
}
