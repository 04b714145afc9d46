package repositories

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/models"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// base resolves the executor per call: the request transaction when there is one,
// the pool otherwise.
type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// get scans one row into dest. found is false when the query returned no rows.
func (b base) get(ctx context.Context, dest any, query string, args ...any) (found bool, err error) {
	err = sqlx.GetContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapConstraintError(err)
	}
	return true, nil
}

func (b base) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, b.executor(ctx), dest, query, args...)
	logQuery(query, args, err)
	return err
}

func (b base) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := b.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, err)

	if err != nil {
		return 0, mapConstraintError(err)
	}
	return rowsAffected, nil
}

// logQuery logs the query in a single line.
func logQuery(query string, args []any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapConstraintError turns constraint violations into domain errors. The store's
// constraints are the final arbiter of the invariants, so a violation that slips
// past a service pre-check still becomes a typed error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case "ratings_user_book_key":
			return models.ErrDuplicateRating
		case "borrow_records_open_book_idx":
			return models.ErrBookUnavailable
		case "users_email_key":
			return models.ErrEmailTaken
		case "genres_name_key":
			return models.ErrGenreExists
		}
	case codeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "borrow_records_user_id_fkey", "ratings_user_id_fkey":
			return models.ErrUserNotFound
		case "borrow_records_book_id_fkey", "ratings_book_id_fkey":
			return models.ErrBookNotFound
		case "books_genre_id_fkey":
			return models.ErrGenreNotFound
		}
	case codeCheckViolation:
		if pgErr.ConstraintName == "ratings_rating_check" {
			return &models.ValidationError{Fields: []models.FieldError{{
				Field:   "rating",
				Reason:  models.ReasonRange,
				Message: fmt.Sprintf("rating must be between %d and %d", models.MinScore, models.MaxScore),
			}}}
		}
	}
	return err
}

// conditions accumulates equality predicates with positional arguments.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) eq(column string, value any) {
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *conditions) raw(clause string) {
	c.clauses = append(c.clauses, clause)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}
