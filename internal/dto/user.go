package dto

import (
	"time"

	"github.com/saiuttej/books-backend/internal/core/domain"
)

// RegisterUserRequest defines data for registering a new account.
type RegisterUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	FullName string  `json:"fullName" binding:"required,min=1,max=100"`
	Password string  `json:"password" binding:"required"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

// UpdateUserRequest defines data for updating a user profile. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,min=1,max=100"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Gender    *string   `json:"gender,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		FullName:  u.FullName,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
