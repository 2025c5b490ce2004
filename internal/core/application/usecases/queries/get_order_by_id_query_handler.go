package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads one order from the directory.
// The row is fetched first and ownership checked after, so an existing order
// belonging to someone else reports not-authorized rather than not-found.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist and a
// NotAuthorizedError when the caller is not the order's customer.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	if !view.CustomerID.IsEqual(query.Caller()) {
		return OrderView{}, errs.NewNotAuthorizedError("only the order's customer can read it")
	}

	return view, nil
}
