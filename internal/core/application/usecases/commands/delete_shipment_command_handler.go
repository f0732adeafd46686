package commands

import (
	"context"
)

// DeleteShipmentCommandHandler removes shipments. Member parcels are released
// by the storage layer (the parcel's shipment reference is set to null).
type DeleteShipmentCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal.
func NewDeleteShipmentCommandHandler(uowFactory CargoUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError when the shipment does not exist.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	if err := uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
