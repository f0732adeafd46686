package ports

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/kernel"
)

// ShipmentStatusChanged is emitted after a shipment status change is committed.
type ShipmentStatusChanged struct {
	ShipmentID   kernel.UUID
	ShipmentName string
	Status       string
	ParcelStatus string
	ParcelIDs    []kernel.UUID
	OccurredAt   time.Time
}

// EventPublisher publishes integration events to other systems.
type EventPublisher interface {
	PublishShipmentStatusChanged(ctx context.Context, event ShipmentStatusChanged) error
}
