package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
)

// PasswordHasher one-way hashes passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns an error when password does not match hash.
	Compare(hash, password string) error
}

// Principal is the identity carried by an access token.
type Principal struct {
	UserID   kernel.UUID
	Username string
	Role     user.Role
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, principal Principal) (string, error)
}

// TokenVerifier checks an access token and returns the identity it carries.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}
