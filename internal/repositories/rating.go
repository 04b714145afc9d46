package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/models"
)

const ratingColumns = `id, user_id, book_id, rating, review, created_at`

// RatingRepository is the store of book ratings.
type RatingRepository struct {
	base
}

func NewRatingRepository(db *sqlx.DB, txGetter TxGetter) *RatingRepository {
	return &RatingRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil, nil when the rating does not exist.
func (r *RatingRepository) GetByID(ctx context.Context, id int64) (*models.RatingDB, error) {
	var rating models.RatingDB
	found, err := r.get(ctx, &rating, `SELECT `+ratingColumns+` FROM ratings WHERE id = $1`, id)
	if err != nil || !found {
		return nil, err
	}
	return &rating, nil
}

// FindByUserAndBook returns the rating a user gave a book, or nil.
func (r *RatingRepository) FindByUserAndBook(ctx context.Context, userID, bookID int64) (*models.RatingDB, error) {
	const query = `SELECT ` + ratingColumns + ` FROM ratings WHERE user_id = $1 AND book_id = $2`

	var rating models.RatingDB
	found, err := r.get(ctx, &rating, query, userID, bookID)
	if err != nil || !found {
		return nil, err
	}
	return &rating, nil
}

// Find lists ratings matching every non-nil filter field.
func (r *RatingRepository) Find(ctx context.Context, filter models.RatingFilter) ([]models.RatingDB, error) {
	var c conditions
	if filter.UserID != nil {
		c.eq("user_id", *filter.UserID)
	}
	if filter.BookID != nil {
		c.eq("book_id", *filter.BookID)
	}

	ratings := []models.RatingDB{}
	query := `SELECT ` + ratingColumns + ` FROM ratings` + c.where() + ` ORDER BY id`
	if err := r.selectAll(ctx, &ratings, query, c.args...); err != nil {
		return nil, err
	}
	return ratings, nil
}

// Insert stores a rating. A second rating for the same (user, book) pair
// yields models.ErrDuplicateRating from the unique constraint.
func (r *RatingRepository) Insert(ctx context.Context, userID, bookID int64, score int, review *string) (*models.RatingDB, error) {
	const query = `
		INSERT INTO ratings (user_id, book_id, rating, review, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + ratingColumns

	var rating models.RatingDB
	if _, err := r.get(ctx, &rating, query, userID, bookID, score, review); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	return n > 0, err
}
