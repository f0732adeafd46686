package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// The parcel row also carries shipment membership, so saving a parcel is how
// membership changes are persisted.
type ParcelRepository interface {
	// Add persists a new parcel. A duplicate tracking code is reported as a Conflict.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel, including a cleared
	// shipment reference.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Delete removes a parcel. Returns ObjectNotFoundError if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a parcel by ID. Returns ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by tracking code.
	// Returns ObjectNotFoundError if no parcel carries the code.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error)

	// GetMany retrieves the parcels with the given IDs. Unknown and repeated
	// IDs are skipped; the result follows the first occurrence of each id.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetByShipment retrieves the current members of a shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error)

	// CountByClient returns how many parcels a client owns.
	CountByClient(ctx context.Context, clientID kernel.UUID) (int64, error)
}
