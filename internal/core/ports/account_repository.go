package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and its account must not already be registered.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *account.Customer) error

	// Get retrieves a customer aggregate by its account identifier.
	// Returns an ObjectNotFoundError when the account is not registered.
	Get(ctx context.Context, id kernel.AccountID) (*account.Customer, error)

	// Exists reports whether the account is registered as a customer.
	Exists(ctx context.Context, id kernel.AccountID) (bool, error)
}

// AdminRepository defines the persistence contract for admin records.
// Admin membership gates every status transition, so Exists sits on the hot
// path of update_order_status.
type AdminRepository interface {
	// Add persists a new admin record.
	// The account must not already hold the admin role.
	Add(ctx context.Context, aggregate *account.Admin) error

	// Get retrieves an admin record by its account identifier.
	// Returns an ObjectNotFoundError when the account is not an admin.
	Get(ctx context.Context, id kernel.AccountID) (*account.Admin, error)

	// Exists reports whether the account holds the admin role.
	Exists(ctx context.Context, id kernel.AccountID) (bool, error)

	// Remove revokes the admin role from the account.
	// Removing an account that is not an admin is reported as not found.
	Remove(ctx context.Context, id kernel.AccountID) error
}
