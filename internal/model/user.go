package model

import "time"

// Role values for User.Role. Only admins may sign in to the admin area.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is an account record. PasswordHash is a bcrypt hash and is never
// serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
