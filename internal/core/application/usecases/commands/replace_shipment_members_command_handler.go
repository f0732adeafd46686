package commands

import (
	"context"

	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
)

// ReplaceShipmentMembersCommandHandler renames a shipment and replaces its
// member set.
//
// Business rules:
//   - Unknown shipment: ObjectNotFoundError
//   - Members missing from the new list are released (unassigned)
//   - Listed parcels are taken even when they sit in another shipment;
//     that shipment's totals are not touched
//   - Unknown parcel IDs are skipped
//   - Totals are always recomputed, even when the set did not change
//
// Concurrent replacements racing for the same parcel are last-writer-wins.
type ReplaceShipmentMembersCommandHandler struct {
	uowFactory  CargoUoWFactory
	coordinator services.ShipmentCoordinator
}

// NewReplaceShipmentMembersCommandHandler creates a handler for membership edits.
// Requires a CargoUoWFactory so releases, takes and totals commit together.
func NewReplaceShipmentMembersCommandHandler(uowFactory CargoUoWFactory) ReplaceShipmentMembersCommandHandler {
	return ReplaceShipmentMembersCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewShipmentCoordinator(),
	}
}

// Handle renames the shipment, applies the new member set and returns the
// shipment with recomputed totals.
func (h *ReplaceShipmentMembersCommandHandler) Handle(
	ctx context.Context,
	cmd ReplaceShipmentMembersCommand,
) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.Rename(cmd.Name()); err != nil {
		return nil, err
	}

	parcelRepo := uow.ParcelRepository()
	current, err := parcelRepo.GetByShipment(ctx, s.ID())
	if err != nil {
		return nil, err
	}

	wanted, err := parcelRepo.GetMany(ctx, cmd.ParcelIDs())
	if err != nil {
		return nil, err
	}

	changed, _, err := h.coordinator.ReplaceMembers(s, current, wanted)
	if err != nil {
		return nil, err
	}

	for _, p := range changed {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = recomputeShipmentTotals(ctx, h.coordinator, parcelRepo, shipmentRepo, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
