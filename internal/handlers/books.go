package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-service/internal/models"
)

// BookCreator defines the interface that the service must implement.
type BookCreator interface {
	Create(ctx context.Context, req models.CreateBookRequest) (*models.BookDB, error)
}

// BookUpdater applies partial updates.
type BookUpdater interface {
	Update(ctx context.Context, id int64, req models.UpdateBookRequest) (*models.BookDB, error)
}

// BookReader reads the catalogue.
type BookReader interface {
	Get(ctx context.Context, id int64) (*models.BookDB, error)
	List(ctx context.Context, filter models.BookFilter) ([]models.BookDB, error)
}

// NewCreateBookHandler returns an HTTP handler that adds a book to the catalogue.
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body models.CreateBookRequest true "Book"
// @Success 201 {object} models.BookResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Genre not found"
// @Router /books [post]
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBookRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		book, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewBookResponse(book))
	}
}

// NewUpdateBookHandler returns an HTTP handler that partially updates a book.
// Only title, author, description and genre_id are applied; other fields are ignored.
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body models.UpdateBookRequest true "Fields to change"
// @Success 200 {object} models.BookResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Book or genre not found"
// @Router /books/{id} [patch]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.UpdateBookRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		book, err := svc.Update(r.Context(), id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBookResponse(book))
	}
}

// NewListBooksHandler returns an HTTP handler that lists books.
// @Summary List books
// @Tags books
// @Produce json
// @Param genre_id query int false "Filter by genre"
// @Param author query string false "Filter by author"
// @Param available query bool false "Filter by availability"
// @Success 200 {array} models.BookResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /books [get]
func NewListBooksHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			filter models.BookFilter
			err    error
		)
		if filter.GenreID, err = queryInt64(r, "genre_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if filter.Available, err = queryBool(r, "available"); err != nil {
			writeError(w, r, err)
			return
		}
		if author := r.URL.Query().Get("author"); author != "" {
			filter.Author = &author
		}

		books, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBookResponses(books))
	}
}

// NewGetBookHandler returns an HTTP handler that fetches one book.
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.BookResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /books/{id} [get]
func NewGetBookHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBookResponse(book))
	}
}
