package api

import "github.com/cnetwk/user-api/internal/domain"

// Common request/response structures

// SignUpRequest defines the payload for the signup and create-user endpoints.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the payload for the update endpoint.
// Password is optional; when empty the stored credential hash is kept.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UserEnvelope is the wrapped response returned by the signup and login
// endpoints.
type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
