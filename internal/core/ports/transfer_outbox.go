package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/transfer"
)

// TransferOutbox defines the persistence contract for scheduled refunds.
// Transfers commit atomically with the call that scheduled them and are
// resolved after commit by the dispatch job.
type TransferOutbox interface {
	// Add persists a newly scheduled transfer in pending status.
	Add(ctx context.Context, aggregate *transfer.Transfer) error

	// Update persists a transfer's resolution status.
	Update(ctx context.Context, aggregate *transfer.Transfer) error

	// GetAllPending retrieves transfers that have not been dispatched yet,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*transfer.Transfer, error)
}
