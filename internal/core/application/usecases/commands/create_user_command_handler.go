package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// CreateUserCommandHandler creates Manager accounts. The role is fixed;
// Admin accounts only come from seeding.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateUserCommandHandler creates a handler for operator accounts.
// The hasher turns passwords into stored hashes.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns ConflictError when the username is taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.GetByUsername(ctx, cmd.Username())
	switch {
	case err == nil:
		return nil, errs.NewConflictError("username", cmd.Username())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Username(), hash, user.Manager)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
