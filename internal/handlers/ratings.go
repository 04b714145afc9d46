package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-service/internal/models"
)

// RatingCreator defines the interface that the service must implement.
type RatingCreator interface {
	Create(ctx context.Context, req models.CreateRatingRequest) (*models.RatingDB, error)
}

// RatingReader reads ratings.
type RatingReader interface {
	Get(ctx context.Context, id int64) (*models.RatingDB, error)
	List(ctx context.Context, filter models.RatingFilter) ([]models.RatingDB, error)
}

// NewCreateRatingHandler returns an HTTP handler that rates a book.
// @Summary Rate a book
// @Description Stores a 1..5 rating with an optional review. A user rates a book at most once.
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body models.CreateRatingRequest true "Rating"
// @Success 201 {object} models.RatingResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields, rating out of range or already rated"
// @Failure 404 {object} models.ErrorResponse "User or book not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /ratings [post]
func NewCreateRatingHandler(svc RatingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRatingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		rating, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewRatingResponse(rating))
	}
}

// NewListRatingsHandler returns an HTTP handler that lists ratings.
// @Summary List ratings
// @Tags ratings
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param book_id query int false "Filter by book"
// @Success 200 {array} models.RatingResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /ratings [get]
func NewListRatingsHandler(svc RatingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			filter models.RatingFilter
			err    error
		)
		if filter.UserID, err = queryInt64(r, "user_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.BookID, err = queryInt64(r, "book_id"); err != nil {
			writeError(w, r, err)
			return
		}

		ratings, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewRatingResponses(ratings))
	}
}

// NewGetRatingHandler returns an HTTP handler that fetches one rating.
// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} models.RatingResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ratings/{id} [get]
func NewGetRatingHandler(svc RatingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		rating, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewRatingResponse(rating))
	}
}
