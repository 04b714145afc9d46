package services

import (
	"context"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/metrics"
	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/validation"
)

// RatingService stores one rating per (user, book) pair.
type RatingService struct {
	users      UserStore
	books      BookStore
	ratings    RatingStore
	events     EventPublisher
	afterWrite Deferrer
}

// NewRatingService creates a new RatingService. afterWrite schedules the
// rating.created event after commit; nil publishes immediately.
func NewRatingService(users UserStore, books BookStore, ratings RatingStore, events EventPublisher, afterWrite Deferrer) *RatingService {
	return &RatingService{users: users, books: books, ratings: ratings, events: events, afterWrite: afterWrite}
}

// Create stores a rating.
//
// Missing fields or a score outside 1..5 yield a validation error, an
// unknown user or book models.ErrUserNotFound / models.ErrBookNotFound, and
// a second rating for the pair models.ErrDuplicateRating.
func (s *RatingService) Create(ctx context.Context, req models.CreateRatingRequest) (rating *models.RatingDB, err error) {
	defer func() { recordViolation(err) }()

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, *req.UserID)
	if err != nil {
		return nil, storageError("get user", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	book, err := s.books.GetByID(ctx, *req.BookID)
	if err != nil {
		return nil, storageError("get book", err)
	}
	if book == nil {
		return nil, models.ErrBookNotFound
	}

	existing, err := s.ratings.FindByUserAndBook(ctx, user.ID, book.ID)
	if err != nil {
		return nil, storageError("find rating", err)
	}
	if existing != nil {
		return nil, models.ErrDuplicateRating
	}

	// the unique constraint still rejects a concurrent duplicate
	rating, err = s.ratings.Insert(ctx, user.ID, book.ID, *req.Rating, req.Review)
	if err != nil {
		return nil, storageError("insert rating", err)
	}

	logger.FromContext(ctx).Infow("book rated", "rating_id", rating.ID, "user_id", user.ID, "book_id", book.ID, "rating", rating.Rating)
	metrics.RatingsCreatedTotal.Inc()
	afterCommit(ctx, s.afterWrite, func() {
		s.events.Publish(ctx, models.EventRatingCreated, user.ID, book.ID, rating.ID)
	})

	return rating, nil
}

// Get returns the rating or models.ErrRatingNotFound.
func (s *RatingService) Get(ctx context.Context, id int64) (*models.RatingDB, error) {
	rating, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("get rating", err)
	}
	if rating == nil {
		return nil, models.ErrRatingNotFound
	}
	return rating, nil
}

func (s *RatingService) List(ctx context.Context, filter models.RatingFilter) ([]models.RatingDB, error) {
	ratings, err := s.ratings.Find(ctx, filter)
	if err != nil {
		return nil, storageError("list ratings", err)
	}
	return ratings, nil
}
