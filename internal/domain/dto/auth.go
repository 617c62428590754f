package dto

import "github.com/guttosm/auctionpulse/internal/domain/models"

// RegisterRequest is the body of POST /api/v1/users.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"hunter22"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// AuthResponse carries the authenticated user and a bearer token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// UserResponse wraps the current user.
type UserResponse struct {
	User models.User `json:"user"`
}
