package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Rejection reasons for illegal status transitions. The messages are part of
// the external contract and must not change.
var (
	// ErrOrderMustHaveConfirmedStatus rejects a transition to InProgress
	// from any status other than Confirmed.
	ErrOrderMustHaveConfirmedStatus = errors.New("Order must have Confirmed status.")

	// ErrOrderMustHaveInProgressStatus rejects a transition to Delivered
	// from any status other than InProgress.
	ErrOrderMustHaveInProgressStatus = errors.New("Order must have InProgress status.")

	// ErrOrderHasDeliveredStatus rejects cancellation of a delivered order.
	ErrOrderHasDeliveredStatus = errors.New("Order has Delivered status.")

	// ErrOrderHasCancelledStatus rejects re-cancellation of a cancelled order.
	ErrOrderHasCancelledStatus = errors.New("Order has Cancelled status.")

	// ErrInvalidStatusOperation rejects transitions to Confirmed or to an
	// unrecognized status value.
	ErrInvalidStatusOperation = errors.New("invalid operation")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Confirmed ──> InProgress ──> Delivered
//	     │             │
//	     └──────┬──────┘
//	            v
//	        Cancelled
//
// Delivered and Cancelled are terminal. Status is a value object: the
// transition logic is a pure function from (current, requested) to either
// the next status or a rejection reason, decoupled from any side effects.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status assigned at order creation.
	Confirmed

	// InProgress indicates the order has been picked up for delivery.
	InProgress

	// Delivered indicates the order reached its customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Confirmed:  "Confirmed",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:  "Confirmed",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Confirmed, InProgress, Delivered and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo computes the result of requesting a transition from s to target.
// It is a pure function over the transition table:
//
//	Confirmed  -> InProgress   allowed
//	InProgress -> Delivered    allowed
//	Confirmed  -> Cancelled    allowed
//	InProgress -> Cancelled    allowed
//
// Every other edge is rejected with a reason: delivering requires InProgress,
// starting progress requires Confirmed, terminal states cannot be cancelled,
// and Confirmed or unrecognized targets are invalid operations.
//
// Returns:
//   - (target, nil) for an allowed transition
//   - (Unknown, error) with the rejection reason otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case InProgress:
		if s != Confirmed {
			return Unknown, ErrOrderMustHaveConfirmedStatus
		}
		return InProgress, nil

	case Delivered:
		if s != InProgress {
			return Unknown, ErrOrderMustHaveInProgressStatus
		}
		return Delivered, nil

	case Cancelled:
		switch s {
		case Delivered:
			return Unknown, ErrOrderHasDeliveredStatus
		case Cancelled:
			return Unknown, ErrOrderHasCancelledStatus
		case Confirmed, InProgress:
			return Cancelled, nil
		default:
			return Unknown, ErrInvalidStatusOperation
		}

	default:
		// Confirmed is not a reachable target; unrecognized values likewise.
		return Unknown, ErrInvalidStatusOperation
	}
}

// RefundDirection identifies the beneficiary of the escrow surplus released
// when an order enters a status.
type RefundDirection int

const (
	// RefundNone releases nothing.
	RefundNone RefundDirection = iota

	// RefundToCustomer releases the surplus to the order's customer.
	RefundToCustomer

	// RefundToOperator releases the surplus to the operator performing the call.
	RefundToOperator
)

// RefundDirection returns who receives the escrow surplus when an order
// enters s: the customer on cancellation, the operator on delivery,
// nobody otherwise.
func (s Status) RefundDirection() RefundDirection {
	switch s {
	case Cancelled:
		return RefundToCustomer
	case Delivered:
		return RefundToOperator
	default:
		return RefundNone
	}
}
