package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListParcelsQueryHandler reads parcels with their owner's code and name.
//
// Example:
//
//	query, err := NewListClientParcelsQuery(clientID)
//	if err != nil {
//		return err
//	}
//	parcels, err := NewListParcelsQueryHandler(db).Handle(ctx, query)
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler over db.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle returns parcels newest first. An unknown client yields an empty slice.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	db := h.db.WithContext(ctx)
	if query.clientID != nil {
		rows, err = db.Raw(parcelSelect+` WHERE p.client_id = ? ORDER BY p.created_at DESC, p.id`, query.clientID.Bytes()).Rows()
	} else {
		rows, err = db.Raw(parcelSelect + ` ORDER BY p.created_at DESC, p.id`).Rows()
	}
	if err != nil {
		return nil, err
	}

	return collect(rows, scanParcel)
}
