package dto

import (
	"time"

	"github.com/sarrafhub/exchange_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new user or office.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsOffice bool   `json:"isOffice"`
	// City is required for office accounts; it is the office's own location,
	// not a commission destination.
	City string `json:"city" binding:"omitempty,min=2"`
}

// UpdateUserRequest defines the mutable fields of a user.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty"`
	Email string `json:"email" binding:"omitempty,email"`
	City  string `json:"city" binding:"omitempty,min=2"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	AccountNumber string    `json:"accountNumber"`
	IsOffice      bool      `json:"isOffice"`
	City          string    `json:"city,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Username:      u.Username,
		Name:          u.Name,
		Email:         u.Email,
		AccountNumber: u.AccountNumber,
		IsOffice:      u.IsOffice,
		City:          u.City,
		CreatedAt:     u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
