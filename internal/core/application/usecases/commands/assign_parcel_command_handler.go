package commands

import (
	"context"

	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
)

// AssignParcelCommandHandler adds a parcel to a shipment by tracking code.
//
// Business rules:
//   - Unknown shipment or tracking code: ObjectNotFoundError
//   - Parcel in a different shipment: ConflictError
//   - Parcel already in this shipment: no change besides the recompute
//   - Totals are recomputed afterwards
type AssignParcelCommandHandler struct {
	uowFactory  CargoUoWFactory
	coordinator services.ShipmentCoordinator
}

// NewAssignParcelCommandHandler creates a handler for tracking-code assignment.
// Requires a CargoUoWFactory so the parcel and totals change together.
func NewAssignParcelCommandHandler(uowFactory CargoUoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewShipmentCoordinator(),
	}
}

// Handle assigns the parcel and recomputes the shipment totals.
// Returns ObjectNotFoundError for an unknown shipment or tracking code and
// ConflictError when the parcel already sits in a different shipment.
func (h *AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) (*shipment.Shipment, error) {
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

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, err
	}

	alreadyMember := p.BelongsTo(s.ID())
	if err = h.coordinator.Join(s, p); err != nil {
		return nil, err
	}

	if !alreadyMember {
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
