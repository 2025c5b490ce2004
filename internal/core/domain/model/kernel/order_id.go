package kernel

import (
	"fulfillment/internal/pkg/errs"
)

// maxOrderIDLength bounds caller-supplied order identifiers.
const maxOrderIDLength = 128

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created
// through NewOrderID. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object identifying an order in the global directory.
// Order identifiers are caller-supplied strings, unique across the directory;
// the zero value is invalid and must be constructed via NewOrderID.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string form.
func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	if len(value) > maxOrderIDLength {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order id length", len(value), 1, maxOrderIDLength)
	}

	return OrderID{value: value}, nil
}

// String returns the string form of the order identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
