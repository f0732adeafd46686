package commands

import (
	"context"

	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
)

// recomputeShipmentTotals reloads the live member set of s, recomputes its
// totals and saves it. Membership changes must already be written through
// parcelRepo so the reload sees them.
func recomputeShipmentTotals(
	ctx context.Context,
	coordinator services.ShipmentCoordinator,
	parcelRepo ports.ParcelRepository,
	shipmentRepo ports.ShipmentRepository,
	s *shipment.Shipment,
) error {
	members, err := parcelRepo.GetByShipment(ctx, s.ID())
	if err != nil {
		return err
	}

	if err = coordinator.RecomputeTotals(s, members); err != nil {
		return err
	}

	return shipmentRepo.Update(ctx, s)
}
