package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAdminByAccountIDQueryIsNotConstructed = errors.New(
	"GetAdminByAccountIDQuery must be created via NewGetAdminByAccountIDQuery constructor",
)

// GetAdminByAccountIDQuery retrieves an admin record.
// Only callers holding the admin role may inspect the admin registry.
type GetAdminByAccountIDQuery struct {
	caller    kernel.AccountID
	accountID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetAdminByAccountIDQuery creates a query for one admin record.
func NewGetAdminByAccountIDQuery(caller, accountID kernel.AccountID) (GetAdminByAccountIDQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAdminByAccountIDQuery{}, err
	}
	if err := accountID.Validate(); err != nil {
		return GetAdminByAccountIDQuery{}, err
	}

	return GetAdminByAccountIDQuery{
		caller:    caller,
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAdminByAccountIDQueryIsNotConstructed if validation fails.
func (q GetAdminByAccountIDQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminByAccountIDQueryIsNotConstructed)
}

// Caller returns the account invoking the call.
func (q GetAdminByAccountIDQuery) Caller() kernel.AccountID {
	return q.caller
}

// AccountID returns the account whose admin record is requested.
func (q GetAdminByAccountIDQuery) AccountID() kernel.AccountID {
	return q.accountID
}
