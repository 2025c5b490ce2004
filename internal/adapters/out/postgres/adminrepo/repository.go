package adminrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAdminRepository implements AdminRepository using GORM.
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GORM admin repository.
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// Add saves a new admin record to the database.
func (r *GormAdminRepository) Add(ctx context.Context, aggregate *account.Admin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an admin record by account ID.
func (r *GormAdminRepository) Get(ctx context.Context, id kernel.AccountID) (*account.Admin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the account holds the admin role.
func (r *GormAdminRepository) Exists(ctx context.Context, id kernel.AccountID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AdminDTO{}).
		Where("id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Remove revokes the admin role from the account.
func (r *GormAdminRepository) Remove(ctx context.Context, id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AdminDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("admin", id.String())
	}

	return nil
}
