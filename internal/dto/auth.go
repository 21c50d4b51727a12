package dto

import "time"

// LoginRequest carries the admin credential for the write API.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token for subsequent write calls.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
