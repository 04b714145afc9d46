package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/library-service/internal/metrics"
	"github.com/sbilibin2017/library-service/internal/models"
)

// UserStore reads and writes users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)                        // Returns nil, nil when absent
	List(ctx context.Context) ([]models.UserDB, error)                                    // Returns every user
	Insert(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) // Stores a user
}

// GenreStore reads and writes genres.
type GenreStore interface {
	GetByID(ctx context.Context, id int64) (*models.GenreDB, error)   // Returns nil, nil when absent
	List(ctx context.Context) ([]models.GenreDB, error)               // Returns every genre
	Insert(ctx context.Context, name string) (*models.GenreDB, error) // Stores a genre
}

// GenreCache caches the genre list.
type GenreCache interface {
	GetGenres(ctx context.Context) ([]models.GenreDB, int64, bool, error)        // Returns the cached list, its version and whether it was present
	SetGenres(ctx context.Context, version int64, genres []models.GenreDB) error // Caches the list for a version
	InvalidateGenres(ctx context.Context) error                                  // Moves to a new version
}

// BookStore reads and writes books.
type BookStore interface {
	GetByID(ctx context.Context, id int64) (*models.BookDB, error)                   // Returns nil, nil when absent
	GetByIDForUpdate(ctx context.Context, id int64) (*models.BookDB, error)          // Same as GetByID, locks the row
	Find(ctx context.Context, filter models.BookFilter) ([]models.BookDB, error)     // Lists matching books
	Insert(ctx context.Context, book models.NewBook) (*models.BookDB, error)         // Stores an available book
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (bool, error) // Updates columns, false when absent
	SetAvailability(ctx context.Context, id int64, available bool) error             // Updates the availability flag
}

// BorrowStore reads and writes borrow records.
type BorrowStore interface {
	GetByID(ctx context.Context, id int64) (*models.BorrowRecordDB, error)                               // Returns nil, nil when absent
	GetByIDForUpdate(ctx context.Context, id int64) (*models.BorrowRecordDB, error)                      // Same as GetByID, locks the row
	FindOpenByBookID(ctx context.Context, bookID int64) (*models.BorrowRecordDB, error)                  // Returns the open borrow of a book or nil
	Find(ctx context.Context, filter models.BorrowFilter) ([]models.BorrowRecordDB, error)               // Lists matching records
	Insert(ctx context.Context, userID, bookID int64, dueDate time.Time) (*models.BorrowRecordDB, error) // Opens a borrow
	MarkReturned(ctx context.Context, id int64) (*models.BorrowRecordDB, error)                          // Closes an open borrow, nil when not open
}

// RatingStore reads and writes ratings.
type RatingStore interface {
	GetByID(ctx context.Context, id int64) (*models.RatingDB, error)                                       // Returns nil, nil when absent
	FindByUserAndBook(ctx context.Context, userID, bookID int64) (*models.RatingDB, error)                 // Returns the rating of a pair or nil
	Find(ctx context.Context, filter models.RatingFilter) ([]models.RatingDB, error)                       // Lists matching ratings
	Insert(ctx context.Context, userID, bookID int64, score int, review *string) (*models.RatingDB, error) // Stores a rating
}

// EventPublisher publishes domain events once the change is committed.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, userID, bookID, entityID int64) // Fire and forget
}

// Deferrer schedules fn after the request transaction of ctx commits.
// middlewares.AfterCommit satisfies it.
type Deferrer func(ctx context.Context, fn func())

// afterCommit runs fn through d, or at once when d is nil.
func afterCommit(ctx context.Context, d Deferrer, fn func()) {
	if d == nil {
		fn()
		return
	}
	d(ctx, fn)
}

// storageError passes domain errors through and wraps anything else as
// models.ErrStorage.
func storageError(op string, err error) error {
	if errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", models.ErrStorage, op, err)
}

// recordViolation counts err when it is a rejected domain rule.
func recordViolation(err error) {
	var rule string
	switch {
	case err == nil:
		return
	case errors.Is(err, models.ErrValidation):
		rule = metrics.RuleValidation
	case errors.Is(err, models.ErrDuplicateRating):
		rule = metrics.RuleDuplicateRating
	case errors.Is(err, models.ErrBookUnavailable):
		rule = metrics.RuleBookUnavailable
	case errors.Is(err, models.ErrAlreadyReturned):
		rule = metrics.RuleAlreadyReturned
	default:
		return
	}
	metrics.RuleViolationsTotal.WithLabelValues(rule).Inc()
}
