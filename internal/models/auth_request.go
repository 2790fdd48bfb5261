package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
// Identify accepts either an email address or a username.
type LoginRequest struct {
	Identify string `json:"identify" binding:"required"`
	Password string `json:"password" binding:"required"`
}
