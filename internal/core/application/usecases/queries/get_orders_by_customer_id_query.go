package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersByCustomerIDQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerIDQuery must be created via NewGetOrdersByCustomerIDQuery constructor",
)

// GetOrdersByCustomerIDQuery retrieves a customer's orders in the sequence
// they were placed. A customer may only read their own view.
type GetOrdersByCustomerIDQuery struct {
	caller     kernel.AccountID
	customerID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerIDQuery creates a query for one customer's orders.
func NewGetOrdersByCustomerIDQuery(caller, customerID kernel.AccountID) (GetOrdersByCustomerIDQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrdersByCustomerIDQuery{}, err
	}
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerIDQuery{}, err
	}

	return GetOrdersByCustomerIDQuery{
		caller:     caller,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerIDQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerIDQueryIsNotConstructed)
}

// Caller returns the account invoking the call.
func (q GetOrdersByCustomerIDQuery) Caller() kernel.AccountID {
	return q.caller
}

// CustomerID returns the customer whose view is requested.
func (q GetOrdersByCustomerIDQuery) CustomerID() kernel.AccountID {
	return q.customerID
}
