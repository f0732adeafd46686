package commands

import (
	"context"

	"cargo/internal/core/domain/model/client"
)

// UpdateClientCommandHandler edits client contact data. The human code is never changed.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client edits.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the client, applies the new contact fields and saves it.
// Returns ObjectNotFoundError when the client does not exist.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
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
	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Name(), cmd.Phone(), cmd.ChatHandle()); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
