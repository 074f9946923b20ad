package repository

import (
	"context"

	"printshop/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns a user by email. Missing rows surface as sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// UpdatePassword replaces the stored password hash for the given user.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
