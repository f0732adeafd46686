package commands

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
)

// SeedUsersCommandHandler creates the built-in admin and manager accounts on
// an empty user table. It does nothing once any account exists.
type SeedUsersCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewSeedUsersCommandHandler creates a handler that seeds the default accounts.
func NewSeedUsersCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) SeedUsersCommandHandler {
	return SeedUsersCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the number of accounts created: 2 on first run, 0 afterwards.
func (h *SeedUsersCommandHandler) Handle(ctx context.Context, cmd SeedUsersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	seeds := []struct {
		username string
		password string
		role     user.Role
	}{
		{username: SeedAdminUsername, password: cmd.AdminPassword(), role: user.Admin},
		{username: SeedManagerUsername, password: cmd.ManagerPassword(), role: user.Manager},
	}

	for _, seed := range seeds {
		hash, hashErr := h.hasher.Hash(seed.password)
		if hashErr != nil {
			return 0, hashErr
		}
		u, newErr := user.NewUser(kernel.NewUUID(), seed.username, hash, seed.role)
		if newErr != nil {
			return 0, newErr
		}
		if err = userRepo.Add(ctx, u); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(seeds), nil
}
