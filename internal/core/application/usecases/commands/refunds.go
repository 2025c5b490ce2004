package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/transfer"
	"fulfillment/internal/core/ports"
)

// storageDelta returns the bytes a call added to storage. A call that frees
// more than it writes owes nothing, so a shrinking reading prices as zero.
func storageDelta(before, after uint64) uint64 {
	if after <= before {
		return 0
	}
	return after - before
}

// scheduleRefund places a surplus into the outbox for post-commit dispatch.
// A zero surplus schedules nothing: refunds are only created for positive
// amounts, so the outbox never accumulates empty transfers.
func scheduleRefund(
	ctx context.Context,
	outbox ports.TransferOutbox,
	beneficiary kernel.AccountID,
	amount kernel.Money,
	at time.Time,
) error {
	if !amount.IsPositive() {
		return nil
	}

	refund, err := transfer.NewTransfer(beneficiary, amount, at)
	if err != nil {
		return err
	}

	return outbox.Add(ctx, refund)
}
