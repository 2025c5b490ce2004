// Package ports defines repository and host interfaces for the fulfillment
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is the single source of truth for order state; per-customer
// listings go through OrderIndexRepository and resolve against this directory.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError when no order carries the identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Exists reports whether an order with the identifier is stored.
	// Used to reject duplicate identifiers before paying for storage.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)
}

// OrderIndexRepository defines the persistence contract for the per-customer
// order index. The index stores order identifiers only; aggregates live in
// OrderRepository. Identifiers keep their append order per customer.
type OrderIndexRepository interface {
	// Append records an order identifier under a customer, after any
	// identifiers already recorded for that customer.
	Append(ctx context.Context, customerID kernel.AccountID, orderID kernel.OrderID) error

	// GetByCustomer retrieves a customer's order identifiers in append order.
	// A customer with no orders yields an empty slice, not an error.
	GetByCustomer(ctx context.Context, customerID kernel.AccountID) ([]kernel.OrderID, error)
}
