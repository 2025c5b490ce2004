package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Clock supplies the timestamp a call observes. Handlers read the clock once
// per call so every record written by the call carries the same timestamp.
type Clock interface {
	Now() time.Time
}

// StorageMeter reports the ledger's storage footprint in bytes. The reading
// must reflect writes made inside the current transaction, so implementations
// are bound to a unit of work.
type StorageMeter interface {
	UsedBytes(ctx context.Context) (uint64, error)
}

// PaymentGateway hands committed refunds to the execution host for payout.
// Dispatch happens outside the scheduling transaction; a gateway failure
// leaves the transfer pending for a later attempt.
type PaymentGateway interface {
	Transfer(ctx context.Context, beneficiary kernel.AccountID, amount kernel.Money) error
}
