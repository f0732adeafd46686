package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment with its members. The member
// listing of a shipment is served from the same view.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler over db.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown shipment. Members are
// ordered oldest first.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.ShipmentID()

	row := db.Raw(`SELECT `+shipmentColumns+` FROM shipments WHERE id = ?`, id.Bytes()).Row()
	view, err := scanShipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentView{}, errs.NewObjectNotFoundError("shipmentId", id.String())
	}
	if err != nil {
		return ShipmentView{}, err
	}

	rows, err := db.Raw(parcelSelect+` WHERE p.shipment_id = ? ORDER BY p.created_at, p.id`, id.Bytes()).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	view.Parcels, err = collect(rows, scanParcel)
	if err != nil {
		return ShipmentView{}, err
	}

	return view, nil
}
