package auth

import (
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is the shape returned by both login and register.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}
