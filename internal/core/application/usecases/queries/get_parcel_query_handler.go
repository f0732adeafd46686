package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler reads one parcel together with its owner's code and name.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler over db.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown tracking code.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	row := h.db.WithContext(ctx).Raw(parcelSelect+` WHERE p.tracking_code = ?`, query.trackingCode).Row()
	view, err := scanParcel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelView{}, errs.NewObjectNotFoundError("trackingCode", query.trackingCode)
	}
	if err != nil {
		return ParcelView{}, err
	}

	return view, nil
}
