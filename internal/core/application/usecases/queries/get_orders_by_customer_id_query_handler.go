package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByCustomerIDQueryHandler reads a customer's order view.
// The view is derived by indirection: the per-customer index holds order
// identifiers in append order, and each resolves against the directory.
type GetOrdersByCustomerIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerIDQueryHandler creates a handler for customer views.
// Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerIDQueryHandler(db *gorm.DB) GetOrdersByCustomerIDQueryHandler {
	return GetOrdersByCustomerIDQueryHandler{db: db}
}

// Handle executes the query.
// Verifies the caller owns the view and is a registered customer, then
// returns the orders in the sequence they were placed.
func (h GetOrdersByCustomerIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerIDQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Caller().IsEqual(query.CustomerID()) {
		return nil, errs.NewNotAuthorizedError("customers can only read their own orders")
	}

	var registered int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT count(*) FROM customers WHERE id = ?`, query.CustomerID().String(),
	).Scan(&registered).Error
	if err != nil {
		return nil, err
	}
	if registered == 0 {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
	}

	orders := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.description,
			o.weight_in_grams,
			o.price,
			o.payment_type,
			o.status,
			o.feedback,
			o.feedback_comment,
			o.pickup_time,
			o.delivery_time
		FROM order_index_entries e
		JOIN orders o ON o.id = e.order_id
		WHERE e.customer_id = ?
		ORDER BY e.position
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
