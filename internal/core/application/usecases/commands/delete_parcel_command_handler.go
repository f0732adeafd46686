package commands

import (
	"context"
)

// DeleteParcelCommandHandler removes parcels.
//
// The containing shipment's totals are not recomputed here; they catch up on
// the next membership change or an explicit recompute.
type DeleteParcelCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel removal.
func NewDeleteParcelCommandHandler(uowFactory CargoUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError when the parcel does not exist.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	if err := uow.ParcelRepository().Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
