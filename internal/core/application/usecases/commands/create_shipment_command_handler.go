package commands

import (
	"context"

	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
)

// CreateShipmentCommandHandler creates shipments in Planning.
//
// Business rules:
//   - Requested parcels that are unassigned become members
//   - Unknown parcels and parcels already in another shipment are skipped silently
//   - Totals are computed once from the accepted members
type CreateShipmentCommandHandler struct {
	uowFactory  CargoUoWFactory
	coordinator services.ShipmentCoordinator
}

// NewCreateShipmentCommandHandler creates a handler for new shipments.
// Requires a CargoUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory CargoUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewShipmentCoordinator(),
	}
}

// Handle stores the shipment and its accepted members in one transaction and
// returns the shipment with its totals set.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	candidates, err := parcelRepo.GetMany(ctx, cmd.ParcelIDs())
	if err != nil {
		return nil, err
	}

	members := make([]*parcel.Parcel, 0, len(candidates))
	for _, p := range candidates {
		if p.IsAssigned() {
			continue
		}
		if err = h.coordinator.Join(s, p); err != nil {
			return nil, err
		}
		members = append(members, p)
	}

	if err = h.coordinator.RecomputeTotals(s, members); err != nil {
		return nil, err
	}

	// The shipment row must exist before parcels can reference it.
	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	for _, p := range members {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
