package entity

import "github.com/google/uuid"

// Admin is the single console operator configured through the environment.
// The console has no user table; the admin identity lives in config.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
}

// RoleAdmin is the role carried in console access tokens
const RoleAdmin = "admin"
