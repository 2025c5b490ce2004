package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCustomerByAccountIDQueryIsNotConstructed = errors.New(
	"GetCustomerByAccountIDQuery must be created via NewGetCustomerByAccountIDQuery constructor",
)

// GetCustomerByAccountIDQuery retrieves a customer profile.
// An account may only read its own profile.
type GetCustomerByAccountIDQuery struct {
	caller    kernel.AccountID
	accountID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetCustomerByAccountIDQuery creates a query for one customer profile.
func NewGetCustomerByAccountIDQuery(caller, accountID kernel.AccountID) (GetCustomerByAccountIDQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetCustomerByAccountIDQuery{}, err
	}
	if err := accountID.Validate(); err != nil {
		return GetCustomerByAccountIDQuery{}, err
	}

	return GetCustomerByAccountIDQuery{
		caller:    caller,
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerByAccountIDQueryIsNotConstructed if validation fails.
func (q GetCustomerByAccountIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByAccountIDQueryIsNotConstructed)
}

// Caller returns the account invoking the call.
func (q GetCustomerByAccountIDQuery) Caller() kernel.AccountID {
	return q.caller
}

// AccountID returns the account whose profile is requested.
func (q GetCustomerByAccountIDQuery) AccountID() kernel.AccountID {
	return q.accountID
}
