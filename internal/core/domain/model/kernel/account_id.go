package kernel

import (
	"fulfillment/internal/pkg/errs"
)

// maxAccountIDLength matches the execution host's account identifier limit.
const maxAccountIDLength = 64

// ErrAccountIDIsNotConstructed indicates that an AccountID was not created
// through NewAccountID. This error is returned when validating a zero-value AccountID.
var ErrAccountIDIsNotConstructed = errs.NewValueIsRequiredError("AccountID must be created via NewAccountID")

// AccountID is a value object identifying an account on the execution host.
// Account identifiers are caller-supplied strings; the zero value is invalid
// and must be constructed via NewAccountID.
//
// AccountID is immutable and safe to compare with IsEqual.
type AccountID struct {
	value string
}

// NewAccountID creates an AccountID from its string form.
// The identifier must be non-empty and no longer than the host limit.
func NewAccountID(value string) (AccountID, error) {
	if value == "" {
		return AccountID{}, errs.NewValueIsRequiredError("account id")
	}
	if len(value) > maxAccountIDLength {
		return AccountID{}, errs.NewValueIsOutOfRangeError("account id length", len(value), 1, maxAccountIDLength)
	}

	return AccountID{value: value}, nil
}

// String returns the string form of the account identifier.
func (id AccountID) String() string {
	return id.value
}

// IsEqual compares two account identifiers for equality.
func (id AccountID) IsEqual(other AccountID) bool {
	return id.value == other.value
}

// Validate checks that the AccountID was properly constructed.
func (id AccountID) Validate() error {
	if id.value == "" {
		return ErrAccountIDIsNotConstructed
	}
	return nil
}
