package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads all shipments and their members in two
// statements.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler over db.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle returns shipments newest first, each with its members.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	rows, err := db.Raw(`SELECT ` + shipmentColumns + ` FROM shipments ORDER BY created_at DESC, id`).Rows()
	if err != nil {
		return nil, err
	}
	shipments, err := collect(rows, scanShipment)
	if err != nil {
		return nil, err
	}

	rows, err = db.Raw(parcelSelect + ` WHERE p.shipment_id IS NOT NULL ORDER BY p.created_at, p.id`).Rows()
	if err != nil {
		return nil, err
	}
	members, err := collect(rows, scanParcel)
	if err != nil {
		return nil, err
	}

	index := make(map[kernel.UUID]int, len(shipments))
	for i, s := range shipments {
		index[s.ID] = i
	}
	for _, p := range members {
		if i, ok := index[*p.ShipmentID]; ok {
			shipments[i].Parcels = append(shipments[i].Parcels, p)
		}
	}

	return shipments, nil
}
