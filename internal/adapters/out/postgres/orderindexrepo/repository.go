package orderindexrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormOrderIndexRepository implements OrderIndexRepository using GORM.
type GormOrderIndexRepository struct {
	db *gorm.DB
}

// NewGormOrderIndexRepository creates a new GORM order index repository.
func NewGormOrderIndexRepository(db *gorm.DB) *GormOrderIndexRepository {
	return &GormOrderIndexRepository{db: db}
}

// Append records an order identifier under a customer, after any identifiers
// already recorded for that customer.
func (r *GormOrderIndexRepository) Append(
	ctx context.Context,
	customerID kernel.AccountID,
	orderID kernel.OrderID,
) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	var position int64
	err := r.db.WithContext(ctx).
		Model(&OrderIndexEntryDTO{}).
		Where("customer_id = ?", customerID.String()).
		Select("COALESCE(MAX(position) + 1, 0)").
		Scan(&position).Error
	if err != nil {
		return err
	}

	dto := OrderIndexEntryDTO{
		CustomerID: customerID.String(),
		Position:   position,
		OrderID:    orderID.String(),
	}
	dto.SizeBytes = dto.sizeBytes()

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCustomer retrieves a customer's order identifiers in append order.
func (r *GormOrderIndexRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.AccountID,
) ([]kernel.OrderID, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderIndexEntryDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.String()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.OrderID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.NewOrderID(dto.OrderID)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
