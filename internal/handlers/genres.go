package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-service/internal/models"
)

// GenreCreator defines the interface that the service must implement.
type GenreCreator interface {
	Create(ctx context.Context, req models.CreateGenreRequest) (*models.GenreDB, error)
}

// GenreLister lists genres.
type GenreLister interface {
	List(ctx context.Context) ([]models.GenreDB, error)
}

// NewCreateGenreHandler returns an HTTP handler that adds a genre.
// @Summary Add a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param request body models.CreateGenreRequest true "Genre"
// @Success 201 {object} models.GenreResponse
// @Failure 400 {object} models.ErrorResponse "Invalid input or genre already exists"
// @Router /genres [post]
func NewCreateGenreHandler(svc GenreCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateGenreRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		genre, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewGenreResponse(genre))
	}
}

// NewListGenresHandler returns an HTTP handler that lists genres.
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.GenreResponse
// @Router /genres [get]
func NewListGenresHandler(svc GenreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewGenreResponses(genres))
	}
}
