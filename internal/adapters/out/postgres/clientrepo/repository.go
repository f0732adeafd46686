package clientrepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrClientIsReferenced is the cause reported when parcels still point at a
// client being deleted.
var ErrClientIsReferenced = errors.New("client is referenced by parcels")

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{
		db: db,
	}
}

// Add saves a new client. A taken human code is reported as a ConflictError.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("humanCode", dto.HumanCode, err)
		}
		return err
	}

	return nil
}

// Update saves every column of an existing client, clearing the chat handle
// when it was removed.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", aggregate.ID().String())
	}

	return nil
}

// Delete removes a client. Parcels referencing it block the delete with a
// ConflictError.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause("clientId", id.String(), ErrClientIsReferenced)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", id.String())
	}

	return nil
}

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByHumanCode retrieves a client by its A##### code.
func (r *GormClientRepository) GetByHumanCode(ctx context.Context, code client.HumanCode) (*client.Client, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "human_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("humanCode", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LastHumanCode returns the greatest code in use or "" for an empty table.
func (r *GormClientRepository) LastHumanCode(ctx context.Context) (string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&ClientDTO{}).
		Order("length(human_code) DESC, human_code DESC").
		Limit(1).
		Pluck("human_code", &codes).Error
	if err != nil {
		return "", err
	}

	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}
