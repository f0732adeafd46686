package user

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const usernameMaxLength = 50

var (
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser constructor")
	ErrUsernameIsRequired     = errs.NewValueIsRequiredError("username")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// User is an operator account. The password is only ever held as a one-way hash.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role
	guard        guard.ConstructorGuard
}

// NewUser creates an account; RestoreUser is the same constructor for
// loading from storage.
func NewUser(id kernel.UUID, username, passwordHash string, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func RestoreUser(id kernel.UUID, username, passwordHash string, role Role) (*User, error) {
	return NewUser(id, username, passwordHash, role)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user may perform privileged operations.
func (u *User) IsAdmin() bool {
	return u.role == Admin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	if n := len([]rune(username)); n > usernameMaxLength {
		return errs.NewValueIsOutOfRangeError("username length", n, 1, usernameMaxLength)
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
