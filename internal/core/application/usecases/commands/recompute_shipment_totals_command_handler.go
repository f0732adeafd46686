package commands

import (
	"context"

	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
)

// RecomputeShipmentTotalsCommandHandler recomputes shipment totals on demand,
// for example after parcels were deleted.
type RecomputeShipmentTotalsCommandHandler struct {
	uowFactory  CargoUoWFactory
	coordinator services.ShipmentCoordinator
}

// NewRecomputeShipmentTotalsCommandHandler creates a handler for totals repair.
func NewRecomputeShipmentTotalsCommandHandler(uowFactory CargoUoWFactory) RecomputeShipmentTotalsCommandHandler {
	return RecomputeShipmentTotalsCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewShipmentCoordinator(),
	}
}

// Handle sets the totals to the live sum over current members. Running it
// twice gives the same result.
func (h *RecomputeShipmentTotalsCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeShipmentTotalsCommand,
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

	if err = recomputeShipmentTotals(ctx, h.coordinator, uow.ParcelRepository(), shipmentRepo, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
