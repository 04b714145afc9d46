package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/models"
)

// GenreRepository is the store of book genres.
type GenreRepository struct {
	base
}

func NewGenreRepository(db *sqlx.DB, txGetter TxGetter) *GenreRepository {
	return &GenreRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil, nil when the genre does not exist.
func (r *GenreRepository) GetByID(ctx context.Context, id int64) (*models.GenreDB, error) {
	var genre models.GenreDB
	found, err := r.get(ctx, &genre, `SELECT id, name FROM genres WHERE id = $1`, id)
	if err != nil || !found {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) List(ctx context.Context) ([]models.GenreDB, error) {
	genres := []models.GenreDB{}
	if err := r.selectAll(ctx, &genres, `SELECT id, name FROM genres ORDER BY name`); err != nil {
		return nil, err
	}
	return genres, nil
}

// Insert stores a genre. A duplicate name yields models.ErrGenreExists.
func (r *GenreRepository) Insert(ctx context.Context, name string) (*models.GenreDB, error) {
	var genre models.GenreDB
	if _, err := r.get(ctx, &genre, `INSERT INTO genres (name) VALUES ($1) RETURNING id, name`, name); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	return n > 0, err
}
