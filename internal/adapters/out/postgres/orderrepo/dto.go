// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// the owning customer for per-customer listings.
type OrderDTO struct {
	ID              string `gorm:"primaryKey"`
	CustomerID      string `gorm:"index"`
	Description     string
	WeightInGrams   uint32
	Price           string `gorm:"type:numeric(39,0)"`
	PaymentType     int
	Status          int
	Feedback        int
	FeedbackComment string
	PickupTime      time.Time
	DeliveryTime    time.Time
	SizeBytes       int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// sizeBytes computes the deterministic storage footprint of the row.
// Only the serialized record fields count; database overhead does not,
// so the figure is stable across backends.
func (dto OrderDTO) sizeBytes() int64 {
	const fixed = 4 + // weight
		16 + // price, u128
		1 + 1 + 1 + // payment type, status, feedback
		8 + 8 // pickup and delivery timestamps

	return int64(len(dto.ID)+len(dto.CustomerID)+len(dto.Description)+len(dto.FeedbackComment)) + fixed
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		Description:     aggregate.Description(),
		WeightInGrams:   aggregate.WeightInGrams(),
		Price:           aggregate.Price().String(),
		PaymentType:     int(aggregate.PaymentType()),
		Status:          int(aggregate.Status()),
		Feedback:        int(aggregate.Feedback()),
		FeedbackComment: aggregate.FeedbackComment(),
		PickupTime:      aggregate.PickupTime(),
		DeliveryTime:    aggregate.DeliveryTime(),
	}
	dto.SizeBytes = dto.sizeBytes()

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate at its persisted lifecycle point using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewAccountID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromString(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Description,
		dto.WeightInGrams,
		price,
		order.PaymentType(dto.PaymentType),
		order.Status(dto.Status),
		order.Feedback(dto.Feedback),
		dto.FeedbackComment,
		dto.PickupTime,
		dto.DeliveryTime,
	)
}
