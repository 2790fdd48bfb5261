package models

import "wewilldo-be/internal/entities"

// AuthResponse represents the payload returned after successful
// registration or login: the public user fields plus a fresh token
type AuthResponse struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}
