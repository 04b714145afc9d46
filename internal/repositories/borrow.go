package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/models"
)

const borrowColumns = `id, user_id, book_id, borrow_date, due_date, return_date`

// BorrowRepository is the store of borrow records.
type BorrowRepository struct {
	base
}

func NewBorrowRepository(db *sqlx.DB, txGetter TxGetter) *BorrowRepository {
	return &BorrowRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil, nil when the record does not exist.
func (r *BorrowRepository) GetByID(ctx context.Context, id int64) (*models.BorrowRecordDB, error) {
	return r.getOne(ctx, `SELECT `+borrowColumns+` FROM borrow_records WHERE id = $1`, id)
}

// GetByIDForUpdate is GetByID that also locks the record until the
// surrounding transaction ends.
func (r *BorrowRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.BorrowRecordDB, error) {
	return r.getOne(ctx, `SELECT `+borrowColumns+` FROM borrow_records WHERE id = $1 FOR UPDATE`, id)
}

// FindOpenByBookID returns the open borrow of a book, or nil.
func (r *BorrowRepository) FindOpenByBookID(ctx context.Context, bookID int64) (*models.BorrowRecordDB, error) {
	const query = `
		SELECT ` + borrowColumns + `
		FROM borrow_records
		WHERE book_id = $1 AND return_date IS NULL
		LIMIT 1`
	return r.getOne(ctx, query, bookID)
}

func (r *BorrowRepository) getOne(ctx context.Context, query string, arg int64) (*models.BorrowRecordDB, error) {
	var record models.BorrowRecordDB
	found, err := r.get(ctx, &record, query, arg)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// Find lists records matching every non-nil filter field.
func (r *BorrowRepository) Find(ctx context.Context, filter models.BorrowFilter) ([]models.BorrowRecordDB, error) {
	var c conditions
	if filter.UserID != nil {
		c.eq("user_id", *filter.UserID)
	}
	if filter.BookID != nil {
		c.eq("book_id", *filter.BookID)
	}
	if filter.Open != nil {
		if *filter.Open {
			c.raw("return_date IS NULL")
		} else {
			c.raw("return_date IS NOT NULL")
		}
	}

	records := []models.BorrowRecordDB{}
	query := `SELECT ` + borrowColumns + ` FROM borrow_records` + c.where() + ` ORDER BY id`
	if err := r.selectAll(ctx, &records, query, c.args...); err != nil {
		return nil, err
	}
	return records, nil
}

// Insert opens a borrow. A second open borrow of the same book yields
// models.ErrBookUnavailable from the partial unique index.
func (r *BorrowRepository) Insert(ctx context.Context, userID, bookID int64, dueDate time.Time) (*models.BorrowRecordDB, error) {
	const query = `
		INSERT INTO borrow_records (user_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, NOW(), $3)
		RETURNING ` + borrowColumns

	var record models.BorrowRecordDB
	if _, err := r.get(ctx, &record, query, userID, bookID, dueDate); err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkReturned closes an open borrow. It returns nil, nil when the record does
// not exist or is already closed, so a record is never closed twice.
func (r *BorrowRepository) MarkReturned(ctx context.Context, id int64) (*models.BorrowRecordDB, error) {
	const query = `
		UPDATE borrow_records
		SET return_date = GREATEST(NOW(), borrow_date)
		WHERE id = $1 AND return_date IS NULL
		RETURNING ` + borrowColumns
	return r.getOne(ctx, query, id)
}

func (r *BorrowRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM borrow_records WHERE id = $1`, id)
	return n > 0, err
}
