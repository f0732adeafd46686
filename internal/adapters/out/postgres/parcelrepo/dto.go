// Package parcelrepo persists parcel aggregates with GORM. Shipment
// membership lives here, in the nullable shipment_id column.
package parcelrepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the row layout of the parcels table.
type ParcelDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingCode string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Weight       float64         `gorm:"type:double precision;not null"`
	Volume       float64         `gorm:"type:double precision;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status       int             `gorm:"not null;index"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShipmentID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	DeliveredAt  *time.Time
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var shipmentID *uuid.UUID
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	return ParcelDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode(),
		Weight:       aggregate.Dimensions().Weight(),
		Volume:       aggregate.Dimensions().Volume(),
		Price:        aggregate.Price(),
		Status:       int(aggregate.Status()),
		ClientID:     aggregate.ClientID().Bytes(),
		ShipmentID:   shipmentID,
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentID = &sID
	}

	dims, err := kernel.NewDimensions(dto.Weight, dto.Volume)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		clientID,
		shipmentID,
		dims,
		dto.Price,
		parcel.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

func toDomainList(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
