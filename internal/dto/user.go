package dto

import (
	"time"

	"blogsite/internal/models"
)

// UserRegistrationRequest is the body of POST /register.
type UserRegistrationRequest struct {
	UserName  string `json:"userName" validate:"required,notblank,min=3,max=50"`
	UserEmail string `json:"userEmail" validate:"required,notblank,email,endswith=.com"`
	Password  string `json:"password" validate:"required,notblank,min=8,alphanumpass"`
}

// UserResponse is what the user service returns. It deliberately has no
// password field.
type UserResponse struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
	Message   string    `json:"message,omitempty"`
}

// UserResponseFromModel builds a response DTO from the persisted entity.
func UserResponseFromModel(user *models.User, message string) UserResponse {
	return UserResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		UserEmail: user.UserEmail,
		CreatedAt: user.CreatedAt,
		Message:   message,
	}
}
