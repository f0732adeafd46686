// Package shipmentrepo persists shipment aggregates with GORM.
package shipmentrepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the row layout of the shipments table. Members are not
// stored here; they point at the shipment from parcels.shipment_id.
type ShipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Status        int       `gorm:"not null"`
	TotalWeight   float64   `gorm:"type:double precision;not null;default:0"`
	TotalVolume   float64   `gorm:"type:double precision;not null;default:0"`
	DepartureDate *time.Time
	ArrivalDate   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Status:        int(aggregate.Status()),
		TotalWeight:   aggregate.Totals().Weight(),
		TotalVolume:   aggregate.Totals().Volume(),
		DepartureDate: aggregate.DepartureDate(),
		ArrivalDate:   aggregate.ArrivalDate(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	totals, err := kernel.NewDimensions(dto.TotalWeight, dto.TotalVolume)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.Name,
		shipment.Status(dto.Status),
		totals,
		dto.DepartureDate,
		dto.ArrivalDate,
		dto.CreatedAt,
	)
}
