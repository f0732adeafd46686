package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

const (
	SeedAdminUsername   = "admin"
	SeedManagerUsername = "manager"
)

var ErrSeedUsersCommandIsNotConstructed = errors.New(
	"SeedUsersCommand must be created via NewSeedUsersCommand constructor",
)

// SeedUsersCommand carries the initial passwords of the built-in accounts.
type SeedUsersCommand struct { //nolint:recvcheck //using for validation
	adminPassword   string
	managerPassword string

	guard guard.ConstructorGuard
}

// NewSeedUsersCommand requires both seed passwords.
func NewSeedUsersCommand(adminPassword, managerPassword string) (SeedUsersCommand, error) {
	var errAdmin, errManager error
	if adminPassword == "" {
		errAdmin = ErrPasswordIsRequired
	}
	if managerPassword == "" {
		errManager = ErrPasswordIsRequired
	}
	if err := errors.Join(errAdmin, errManager); err != nil {
		return SeedUsersCommand{}, err
	}

	return SeedUsersCommand{
		adminPassword:   adminPassword,
		managerPassword: managerPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedUsersCommand) Validate() error {
	return c.guard.Validate(ErrSeedUsersCommandIsNotConstructed)
}

// AdminPassword returns the password for the admin account.
func (c SeedUsersCommand) AdminPassword() string {
	return c.adminPassword
}

// ManagerPassword returns the password for the manager account.
func (c SeedUsersCommand) ManagerPassword() string {
	return c.managerPassword
}
