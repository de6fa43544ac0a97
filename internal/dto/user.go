package dto

import (
	"time"

	"github.com/propdesk/property-management-api/internal/models"
)

// UserDTO is the public shape of an account; the hash never leaves the server.
type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserDTO converts a User model to its public shape.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
