package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order. Only the order's customer may
// read it.
type GetOrderByIDQuery struct {
	caller  kernel.AccountID
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(caller kernel.AccountID, orderID kernel.OrderID) (GetOrderByIDQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// Caller returns the account invoking the call.
func (q GetOrderByIDQuery) Caller() kernel.AccountID {
	return q.caller
}

// OrderID returns the identifier of the order to read.
func (q GetOrderByIDQuery) OrderID() kernel.OrderID {
	return q.orderID
}
