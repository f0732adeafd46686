package parcelrepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{
		db: db,
	}
}

// Add saves a new parcel. A taken tracking code is reported as a ConflictError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, dto)
	}

	return nil
}

// Update saves every column, so a released parcel gets shipment_id = NULL.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	return nil
}

// Delete removes a parcel. The owning shipment's cached totals are left as they are.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}

	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a parcel by its tracking code.
func (r *GormParcelRepository) GetByTrackingCode(ctx context.Context, trackingCode string) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", trackingCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", trackingCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads the parcels with the given IDs in the order requested.
// Unknown and repeated IDs are skipped.
func (r *GormParcelRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	if len(ids) == 0 {
		return []*parcel.Parcel{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ParcelDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	ordered := make([]ParcelDTO, 0, len(dtos))
	for _, id := range raw {
		dto, ok := byID[id]
		if !ok {
			continue
		}
		ordered = append(ordered, dto)
		delete(byID, id)
	}

	return toDomainList(ordered)
}

// GetByShipment retrieves the members of a shipment, oldest first.
func (r *GormParcelRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// CountByClient returns how many parcels the client owns.
func (r *GormParcelRepository) CountByClient(ctx context.Context, clientID kernel.UUID) (int64, error) {
	if err := clientID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("client_id = ?", clientID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func translateWriteError(err error, dto ParcelDTO) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictErrorWithCause("trackingCode", dto.TrackingCode, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause("parcel references", err)
	default:
		return err
	}
}
