package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/models"
)

const bookSelect = `
	SELECT b.id, b.title, b.author, b.published_year, b.description,
	       b.genre_id, g.name AS genre_name, b.is_available, b.last_updated
	FROM books b
	LEFT JOIN genres g ON g.id = b.genre_id`

// updatableBookColumns is the allow-list of UpdateFields.
var updatableBookColumns = map[string]struct{}{
	"title":       {},
	"author":      {},
	"description": {},
	"genre_id":    {},
}

// BookRepository is the store of books.
type BookRepository struct {
	base
}

func NewBookRepository(db *sqlx.DB, txGetter TxGetter) *BookRepository {
	return &BookRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil, nil when the book does not exist.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.BookDB, error) {
	return r.getOne(ctx, bookSelect+` WHERE b.id = $1`, id)
}

// GetByIDForUpdate is GetByID that also locks the book row until the
// surrounding transaction ends.
func (r *BookRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.BookDB, error) {
	return r.getOne(ctx, bookSelect+` WHERE b.id = $1 FOR UPDATE OF b`, id)
}

func (r *BookRepository) getOne(ctx context.Context, query string, id int64) (*models.BookDB, error) {
	var book models.BookDB
	found, err := r.get(ctx, &book, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &book, nil
}

// Find lists books matching every non-nil filter field.
func (r *BookRepository) Find(ctx context.Context, filter models.BookFilter) ([]models.BookDB, error) {
	var c conditions
	if filter.GenreID != nil {
		c.eq("b.genre_id", *filter.GenreID)
	}
	if filter.Author != nil {
		c.eq("b.author", *filter.Author)
	}
	if filter.Available != nil {
		c.eq("b.is_available", *filter.Available)
	}

	books := []models.BookDB{}
	if err := r.selectAll(ctx, &books, bookSelect+c.where()+` ORDER BY b.id`, c.args...); err != nil {
		return nil, err
	}
	return books, nil
}

// Insert stores a new, available book and returns it with its genre name.
func (r *BookRepository) Insert(ctx context.Context, book models.NewBook) (*models.BookDB, error) {
	const query = `
		WITH b AS (
			INSERT INTO books (title, author, published_year, description, genre_id, is_available, last_updated)
			VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
			RETURNING *
		)
		SELECT b.id, b.title, b.author, b.published_year, b.description,
		       b.genre_id, g.name AS genre_name, b.is_available, b.last_updated
		FROM b
		LEFT JOIN genres g ON g.id = b.genre_id`

	var out models.BookDB
	if _, err := r.get(ctx, &out, query,
		book.Title, book.Author, book.PublishedYear, book.Description, book.GenreID,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFields sets the given allow-listed columns and bumps last_updated.
// It returns false when the book does not exist.
func (r *BookRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	if len(fields) == 0 {
		return false, fmt.Errorf("update book %d: no fields", id)
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if _, ok := updatableBookColumns[column]; !ok {
			return false, fmt.Errorf("update book %d: column %q is not updatable", id, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		args = append(args, fields[column])
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	sets = append(sets, "last_updated = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE books SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	n, err := r.exec(ctx, query, args...)
	return n > 0, err
}

// SetAvailability updates the cached availability flag. Only the borrow
// workflow calls it, inside the same transaction as the borrow record change.
func (r *BookRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	const query = `UPDATE books SET is_available = $1, last_updated = NOW() WHERE id = $2`

	n, err := r.exec(ctx, query, available, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	return n > 0, err
}
