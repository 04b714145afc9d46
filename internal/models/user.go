package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `db:"id"`            // Primary key
	Name         string    `db:"name"`          // Display name
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never rendered
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	// example: Jane Doe
	Name string `json:"name" validate:"required,notblank,max=100"`

	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email,max=120"`

	// Plain password, stored as a bcrypt hash. bcrypt reads at most 72 bytes.
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// UserResponse is the transport record of a user
// swagger:model UserResponse
type UserResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Jane Doe"`
	Email     string  `json:"email" example:"jane@example.com"`
	CreatedAt *string `json:"created_at" example:"2025-01-31T10:00:00Z"`
}

// NewUserResponse maps a user row to its transport record.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: formatTimestamp(&u.CreatedAt),
	}
}

// NewUserResponses maps a slice of user rows.
func NewUserResponses(users []UserDB) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
