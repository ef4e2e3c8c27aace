package models

import "storefront-be/internal/entities"

// UserResponse is the public view of a user. It is also the identity the
// auth middleware attaches to an authenticated request.
type UserResponse struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// AuthResponse represents the response after successful registration or login
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// NewUserResponse strips everything but the public fields from a user.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
