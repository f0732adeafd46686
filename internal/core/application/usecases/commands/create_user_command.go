package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// minPasswordLength keeps trivially short passwords out of operator accounts.
const minPasswordLength = 6

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand adds a Manager account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command for a new Manager account.
// Username and password are required.
func NewCreateUserCommand(userID kernel.UUID, username, password string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the trimmed login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to hash.
func (c CreateUserCommand) Password() string {
	return c.password
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}
	c.username = strings.TrimSpace(username)
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, nil)
	}
	c.password = password
	return nil
}
