package auth

import (
	"github.com/anasbeautylab/beautylab-backend/internal/users"
)

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expires_in"`
	User      *users.UserDTO `json:"user"`
}

// TokenResponse carries a re-minted token for an already-authenticated user.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
