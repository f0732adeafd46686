package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Members are loaded through ParcelRepository.GetByShipment.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes a shipment; its members become unassigned.
	// Returns ObjectNotFoundError if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a shipment by ID. Returns ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
