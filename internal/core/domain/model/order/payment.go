package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentType identifies how an order is paid. The marketplace currently
// supports a single prepaid scheme: the full price is escrowed at creation.
type PaymentType int

const (
	// PaymentTypeUnknown represents an invalid or undefined payment type.
	PaymentTypeUnknown PaymentType = iota

	// PaymentTypePrepaid escrows the order price at creation.
	PaymentTypePrepaid
)

// Validate checks if the PaymentType value is valid.
func (p PaymentType) Validate() error {
	if p != PaymentTypePrepaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment type is invalid",
			fmt.Errorf("%d is not a valid payment type", p),
		)
	}
	return nil
}

// String returns the human-readable name of the payment type.
func (p PaymentType) String() string {
	if p == PaymentTypePrepaid {
		return "Prepaid"
	}
	return "Unknown"
}
