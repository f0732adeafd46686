package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for operator accounts.
type UserRepository interface {
	// Add persists a new user. A duplicate username is reported as a Conflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Delete removes a user. Returns ObjectNotFoundError if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByUsername retrieves a user for login.
	// Returns ObjectNotFoundError if no such user exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// Count returns the number of accounts.
	Count(ctx context.Context) (int64, error)
}
