package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// minimumFeeUnits is the flat fee charged on order creation, in smallest
// monetary units. The fee is what a deposit must cover beyond the order price.
const minimumFeeUnits = 1

// DepositLedger is a domain service responsible for the monetary accounting
// of a call: pricing storage growth, charging the minimum fee and computing
// the surplus owed back to a caller.
//
// Key responsibilities:
//   - Pricing storage deltas at the configured per-byte rate
//   - Reconciling an available balance against a required amount
//   - Reporting shortfalls as insufficient-funds errors
//
// Business rules:
//   - All arithmetic is checked; results never wrap or go negative
//   - A shortfall aborts the call, it is never silently truncated to zero
//   - Surpluses are exact, the ledger never rounds
//
// Example usage:
//
//	ledger, _ := services.NewDepositLedger(bytePrice)
//	cost, _ := ledger.StorageCost(bytesAdded)
//	surplus, err := ledger.Reconcile(deposit, cost)
//	if err != nil {
//	    // Deposit does not cover the storage cost; abort the call
//	    return err
//	}
//	// Schedule a refund of surplus to the caller
type DepositLedger struct {
	bytePrice kernel.Money
}

// NewDepositLedger creates a DepositLedger charging bytePrice per stored byte.
func NewDepositLedger(bytePrice kernel.Money) (DepositLedger, error) {
	if err := bytePrice.Validate(); err != nil {
		return DepositLedger{}, err
	}

	return DepositLedger{bytePrice: bytePrice}, nil
}

// MinimumFee returns the flat fee a creation deposit must cover beyond the
// order price.
func (l DepositLedger) MinimumFee() kernel.Money {
	return kernel.NewMoney(minimumFeeUnits)
}

// StorageCost prices a storage delta of deltaBytes at the per-byte rate.
//
// Returns:
//   - kernel.Money: the exact cost of the delta
//   - error: an out-of-range error if the product exceeds the monetary bound
func (l DepositLedger) StorageCost(deltaBytes uint64) (kernel.Money, error) {
	return l.bytePrice.MulUint64(deltaBytes)
}

// Reconcile settles a required amount against an available balance and
// returns the surplus owed back to the payer.
//
// Parameters:
//   - available: the balance the payer attached or is owed
//   - required: the amount the call must retain
//
// Returns:
//   - kernel.Money: available minus required; zero when they are equal
//   - error: an InsufficientFundsError when available cannot cover required
func (l DepositLedger) Reconcile(available, required kernel.Money) (kernel.Money, error) {
	surplus, err := available.Sub(required)
	if err != nil {
		return kernel.Money{}, errs.NewInsufficientFundsErrorWithCause(
			"available balance does not cover the required amount", err)
	}

	return surplus, nil
}
