package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/models"
	"github.com/sbilibin2017/library-service/internal/validation"
)

// UserService manages library users.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create validates the request, hashes the password and stores the user.
// A taken email yields models.ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.UserDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.Insert(ctx, strings.TrimSpace(req.Name), email, string(hash))
	if err != nil {
		return nil, storageError("insert user", err)
	}
	return user, nil
}

// Get returns the user or models.ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("get user", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storageError("list users", err)
	}
	return users, nil
}
