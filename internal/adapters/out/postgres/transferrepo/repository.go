package transferrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/transfer"

	"gorm.io/gorm"
)

// GormTransferOutbox implements TransferOutbox using GORM.
type GormTransferOutbox struct {
	db *gorm.DB
}

// NewGormTransferOutbox creates a new GORM transfer outbox.
func NewGormTransferOutbox(db *gorm.DB) *GormTransferOutbox {
	return &GormTransferOutbox{db: db}
}

// Add saves a newly scheduled transfer to the database.
func (r *GormTransferOutbox) Add(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a transfer's resolution status.
func (r *GormTransferOutbox) Update(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransferDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetAllPending retrieves transfers that have not been dispatched yet, oldest first.
func (r *GormTransferOutbox) GetAllPending(ctx context.Context) ([]*transfer.Transfer, error) {
	var dtos []TransferDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(transfer.StatusPending)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	transfers := make([]*transfer.Transfer, 0, len(dtos))
	for _, dto := range dtos {
		t, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		transfers = append(transfers, t)
	}

	return transfers, nil
}
