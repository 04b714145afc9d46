package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-service/internal/models"
)

const userColumns = `id, name, email, password_hash, created_at`

// UserRepository is the store of library users.
type UserRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	found, err := r.get(ctx, &user, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users := []models.UserDB{}
	if err := r.selectAll(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// Insert stores a user. A taken email yields models.ErrEmailTaken.
func (r *UserRepository) Insert(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	if _, err := r.get(ctx, &user, query, name, email, passwordHash); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return n > 0, err
}
