// Package transfer models the refund side effects of the ledger. Transfers
// are scheduled inside a successful call and resolved asynchronously after
// commit by the dispatch job; once a call commits, its transfers can no
// longer be rolled back by the core.
package transfer

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransferIsNotConstructed is returned when a Transfer instance was not
// created through NewTransfer or RestoreTransfer.
var ErrTransferIsNotConstructed = errors.New("Transfer must be created via NewTransfer constructor")

// Status tracks an outbox transfer through its post-commit resolution.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending marks a transfer committed with its call but not yet
	// handed to the payment gateway.
	StatusPending

	// StatusDispatched marks a transfer delivered to the payment gateway.
	StatusDispatched
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusDispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"transfer status is invalid",
			fmt.Errorf("%d is not a valid transfer status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDispatched:
		return "Dispatched"
	default:
		return "Unknown"
	}
}

// Transfer is a one-shot refund owed to a beneficiary account.
// A transfer is created exactly once per positive surplus and is never
// retried into a second payment once dispatched.
type Transfer struct {
	id          uuid.UUID
	beneficiary kernel.AccountID
	amount      kernel.Money
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewTransfer schedules a pending transfer of amount to beneficiary.
// The amount must be positive: zero surpluses never schedule a transfer.
func NewTransfer(beneficiary kernel.AccountID, amount kernel.Money, createdAt time.Time) (*Transfer, error) {
	if err := beneficiary.Validate(); err != nil {
		return nil, err
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("transfer amount must be positive")
	}

	return &Transfer{
		id:            uuid.New(),
		beneficiary:   beneficiary,
		amount:        amount,
		status:        StatusPending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreTransfer reconstructs a Transfer from persisted state.
func RestoreTransfer(
	id uuid.UUID,
	beneficiary kernel.AccountID,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
) (*Transfer, error) {
	if err := beneficiary.Validate(); err != nil {
		return nil, err
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Transfer{
		id:            id,
		beneficiary:   beneficiary,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transfer was properly constructed.
func (t *Transfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransferIsNotConstructed
	}
	return nil
}

// ID returns the transfer's unique identifier.
func (t *Transfer) ID() uuid.UUID {
	return t.id
}

// Beneficiary returns the account receiving the refund.
func (t *Transfer) Beneficiary() kernel.AccountID {
	return t.beneficiary
}

// Amount returns the refunded amount.
func (t *Transfer) Amount() kernel.Money {
	return t.amount
}

// Status returns the transfer's resolution status.
func (t *Transfer) Status() Status {
	return t.status
}

// CreatedAt returns the timestamp of the scheduling call.
func (t *Transfer) CreatedAt() time.Time {
	return t.createdAt
}

// MarkDispatched records that the payment gateway accepted the transfer.
// Dispatching is one-shot: a dispatched transfer cannot go back to pending.
func (t *Transfer) MarkDispatched() error {
	if t.status == StatusDispatched {
		return errs.NewValueIsInvalidError("transfer is already dispatched")
	}

	t.status = StatusDispatched
	return nil
}
