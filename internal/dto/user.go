package dto

import "github.com/hmorita/group-task-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}
