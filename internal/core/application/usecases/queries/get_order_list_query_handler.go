package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderListQueryHandler reads the full order directory for admins.
type GetOrderListQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderListQueryHandler creates a handler for directory listings.
// Requires a GORM database connection for query execution.
func NewGetOrderListQueryHandler(db *gorm.DB) GetOrderListQueryHandler {
	return GetOrderListQueryHandler{db: db}
}

// Handle executes the query.
// Verifies the caller holds the admin capability, then returns every order
// sorted by identifier for consistent output.
func (h GetOrderListQueryHandler) Handle(ctx context.Context, query GetOrderListQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	isAdmin, err := hasAdminCapability(ctx, h.db, query.Caller())
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, errs.NewNotAuthorizedError("only admins can list all orders")
	}

	orders := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderViewColumns + `
		FROM orders
		ORDER BY id
	`).Rows()
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
