package commands

import (
	"context"

	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/services"
)

// UpdateParcelCommandHandler edits parcels and keeps the containing shipment's
// totals in step.
//
// Business rules:
//   - Unknown parcel: ObjectNotFoundError
//   - Tracking code used by another parcel: ConflictError
//   - Weight or volume moved by more than kernel.DimensionsEpsilon while the
//     parcel is in a shipment: that shipment's totals are recomputed in the
//     same transaction. Price-only edits never recompute.
type UpdateParcelCommandHandler struct {
	uowFactory  CargoUoWFactory
	coordinator services.ShipmentCoordinator
}

// NewUpdateParcelCommandHandler creates a handler for parcel edits.
// Requires a CargoUoWFactory because a measure change rewrites shipment totals.
func NewUpdateParcelCommandHandler(uowFactory CargoUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewShipmentCoordinator(),
	}
}

// Handle saves the edit and, when weight or volume moved by more than the
// tolerance, recomputes the owning shipment in the same transaction.
// Returns ConflictError when the new tracking code belongs to another parcel.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (*parcel.Parcel, error) {
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

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if cmd.TrackingCode() != p.TrackingCode() {
		id := p.ID()
		if err = ensureTrackingCodeFree(ctx, parcelRepo, cmd.TrackingCode(), &id); err != nil {
			return nil, err
		}
	}

	dimensionsChanged, err := p.Edit(cmd.TrackingCode(), cmd.Dimensions(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if dimensionsChanged && p.IsAssigned() {
		shipmentRepo := uow.ShipmentRepository()
		s, getErr := shipmentRepo.Get(ctx, *p.ShipmentID())
		if getErr != nil {
			return nil, getErr
		}
		if err = recomputeShipmentTotals(ctx, h.coordinator, parcelRepo, shipmentRepo, s); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
