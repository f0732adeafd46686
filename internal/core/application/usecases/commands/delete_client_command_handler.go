package commands

import (
	"context"
	"errors"

	"cargo/internal/pkg/errs"
)

// ErrClientOwnsParcels is the cause of the Conflict returned when deleting a
// client that still has parcels.
var ErrClientOwnsParcels = errors.New("client still owns parcels")

// DeleteClientCommandHandler removes clients.
//
// Business rules:
//   - Unknown client: ObjectNotFoundError
//   - Client with parcels: ConflictError; parcels require an owner
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewDeleteClientCommandHandler creates a handler for client removal.
// Requires a ClientUoWFactory, which also exposes parcels for the ownership check.
func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the client. Returns ObjectNotFoundError for an unknown
// client and ConflictError while the client still owns parcels.
func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owned, err := uow.ParcelRepository().CountByClient(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if owned > 0 {
		return errs.NewConflictErrorWithCause("clientId", cmd.ClientID(), ErrClientOwnsParcels)
	}

	if err = uow.ClientRepository().Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
