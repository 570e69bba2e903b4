package dto

import (
	"time"

	"github.com/spec-kit/edupulse/internal/domain"
)

// CreateUserRequest payload for the admin create-user endpoint.
type CreateUserRequest struct {
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
	RollNumber *string `json:"roll_number"`
}

// UserResponse is the public view of an account; it never carries the hash.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	RollNumber *string   `json:"roll_number,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       string(user.Role),
		Department: user.Department,
		RollNumber: user.RollNumber,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
