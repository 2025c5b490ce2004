// Package queries contains read-only operations over the ledger state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return view structures, bypassing the aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderView is the read model of a single order as stored in the directory.
type OrderView struct {
	ID              kernel.OrderID
	CustomerID      kernel.AccountID
	Description     string
	WeightInGrams   uint32
	Price           kernel.Money
	PaymentType     order.PaymentType
	Status          order.Status
	Feedback        order.Feedback
	FeedbackComment string
	PickupTime      time.Time
	DeliveryTime    time.Time
}

// orderViewColumns is the select list every order query scans, in scan order.
const orderViewColumns = `
	id,
	customer_id,
	description,
	weight_in_grams,
	price,
	payment_type,
	status,
	feedback,
	feedback_comment,
	pickup_time,
	delivery_time
`

// scanOrderView reads one order row into an OrderView.
func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view        OrderView
		id          string
		customerID  string
		price       string
		paymentType int
		status      int
		feedback    int
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&view.Description,
		&view.WeightInGrams,
		&price,
		&paymentType,
		&status,
		&feedback,
		&view.FeedbackComment,
		&view.PickupTime,
		&view.DeliveryTime,
	); err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.NewOrderID(id)
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	accountID, err := kernel.NewAccountID(customerID)
	if err != nil {
		return OrderView{}, err
	}
	view.CustomerID = accountID

	amount, err := kernel.NewMoneyFromString(price)
	if err != nil {
		return OrderView{}, err
	}
	view.Price = amount

	view.PaymentType = order.PaymentType(paymentType)
	view.Status = order.Status(status)
	view.Feedback = order.Feedback(feedback)

	return view, nil
}

// hasAdminCapability reports whether the caller holds the admin role.
func hasAdminCapability(ctx context.Context, db *gorm.DB, caller kernel.AccountID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT count(*) FROM admins WHERE id = ?`, caller.String(),
	).Scan(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CustomerView is the read model of a customer profile.
type CustomerView struct {
	ID        kernel.AccountID
	Profile   account.Profile
	Role      account.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminView is the read model of an admin record.
type AdminView struct {
	ID        kernel.AccountID
	Role      account.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
