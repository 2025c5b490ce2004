package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderListQueryIsNotConstructed = errors.New(
	"GetOrderListQuery must be created via NewGetOrderListQuery constructor",
)

// GetOrderListQuery retrieves the whole order directory.
// Reserved for admins; customers read their own orders through
// GetOrdersByCustomerIDQuery.
//
// Example:
//
//	query, _ := NewGetOrderListQuery(adminAccount)
//	handler := NewGetOrderListQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Directory holds %d orders\n", len(orders))
type GetOrderListQuery struct {
	caller kernel.AccountID

	guard guard.ConstructorGuard
}

// NewGetOrderListQuery creates a query for the full order directory.
func NewGetOrderListQuery(caller kernel.AccountID) (GetOrderListQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrderListQuery{}, err
	}

	return GetOrderListQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderListQueryIsNotConstructed if validation fails.
func (q GetOrderListQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderListQueryIsNotConstructed)
}

// Caller returns the account invoking the call.
func (q GetOrderListQuery) Caller() kernel.AccountID {
	return q.caller
}
