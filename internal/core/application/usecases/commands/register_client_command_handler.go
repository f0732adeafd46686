package commands

import (
	"context"

	"cargo/internal/core/domain/model/client"
)

// RegisterClientCommandHandler registers clients under the next free human code.
//
// The next code is the lexicographically greatest code in storage plus one.
// A unique index on the code column turns a concurrent registration that
// picked the same code into a Conflict instead of a duplicate.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client registration.
func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle issues the next human code and persists the client.
func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error) {
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

	clientRepo := uow.ClientRepository()
	lastCode, err := clientRepo.LastHumanCode(ctx)
	if err != nil {
		return nil, err
	}

	c, err := client.NewClient(cmd.ClientID(), client.NextHumanCode(lastCode), cmd.Name(), cmd.Phone(), cmd.ChatHandle())
	if err != nil {
		return nil, err
	}

	if err = clientRepo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
