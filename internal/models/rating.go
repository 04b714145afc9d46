package models

import "time"

// Score bounds of a rating.
const (
	MinScore = 1
	MaxScore = 5
)

// RatingDB represents a rating row
type RatingDB struct {
	ID        int64     `db:"id"`         // Primary key
	UserID    int64     `db:"user_id"`    // Rating author
	BookID    int64     `db:"book_id"`    // Rated book
	Rating    int       `db:"rating"`     // Score in [MinScore, MaxScore]
	Review    *string   `db:"review"`     // Optional free text
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
}

// RatingFilter narrows rating listings by equality. Nil fields are ignored.
type RatingFilter struct {
	UserID *int64
	BookID *int64
}

// CreateRatingRequest represents the JSON body for rating a book
// swagger:model CreateRatingRequest
type CreateRatingRequest struct {
	// Rating author
	// required: true
	// example: 1
	UserID *int64 `json:"user_id" validate:"required,gt=0"`

	// Rated book
	// required: true
	// example: 2
	BookID *int64 `json:"book_id" validate:"required,gt=0"`

	// Score between 1 and 5
	// required: true
	// example: 4
	Rating *int `json:"rating" validate:"required,score"`

	// Optional review
	// example: A classic read with deep themes.
	Review *string `json:"review"`
}

// RatingResponse is the transport record of a rating
// swagger:model RatingResponse
type RatingResponse struct {
	ID        int64   `json:"id" example:"1"`
	UserID    int64   `json:"user_id" example:"1"`
	BookID    int64   `json:"book_id" example:"2"`
	Rating    int     `json:"rating" example:"4"`
	Review    *string `json:"review"`
	CreatedAt *string `json:"created_at" example:"2025-01-31T10:00:00Z"`
}

func NewRatingResponse(r *RatingDB) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Review:    r.Review,
		CreatedAt: formatTimestamp(&r.CreatedAt),
	}
}

func NewRatingResponses(ratings []RatingDB) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, NewRatingResponse(&ratings[i]))
	}
	return out
}
