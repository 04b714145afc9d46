package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/library-service/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.UserDB, error)
}

// UserReader reads users.
type UserReader interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewCreateUserHandler returns an HTTP handler that registers a library user.
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid input or email already registered"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewUserResponse(user))
	}
}

// NewListUsersHandler returns an HTTP handler that lists users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserResponse
// @Router /users [get]
func NewListUsersHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserResponses(users))
	}
}

// NewGetUserHandler returns an HTTP handler that fetches one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}
