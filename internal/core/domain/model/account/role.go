package account

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role distinguishes the two kinds of accounts the ledger knows about.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places and owns orders.
	RoleCustomer

	// RoleAdmin operates the order lifecycle.
	RoleAdmin
)

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}
