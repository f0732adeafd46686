package commands

import (
	"context"
	"errors"
	"fmt"

	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// LoginCommandHandler checks credentials and issues an access token.
// Unknown usernames and wrong passwords produce the same ErrAuthFailure so
// callers cannot probe which accounts exist.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler that checks credentials with hasher
// and signs tokens with issuer.
func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle returns a signed token on success.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", fmt.Errorf("%w: invalid username or password", errs.ErrAuthFailure)
	}
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return "", fmt.Errorf("%w: invalid username or password", errs.ErrAuthFailure)
	}

	return h.issuer.Issue(ctx, ports.Principal{
		UserID:   u.ID(),
		Username: u.Username(),
		Role:     u.Role(),
	})
}
