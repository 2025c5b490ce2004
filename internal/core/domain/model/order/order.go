package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderMustHaveDeliveredStatus rejects feedback on an order that has
	// not been delivered. The message is part of the external contract.
	ErrOrderMustHaveDeliveredStatus = errors.New("Order must have Delivered status.")
)

// Order represents a fulfillment order in the ledger. It is the aggregate root
// that manages the order lifecycle from creation through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and an owning customer
//   - Price is an unsigned 128-bit amount escrowed at creation
//   - Status transitions follow the lifecycle state machine
//   - Feedback can only be attached in Delivered status
//   - Can only be created through NewOrder or RestoreOrder
//
// Pickup and delivery timestamps are both assigned at creation and are never
// refreshed by later transitions.
type Order struct {
	id              kernel.OrderID
	customerID      kernel.AccountID
	description     string
	weightInGrams   uint32
	price           kernel.Money
	paymentType     PaymentType
	status          Status
	feedback        Feedback
	feedbackComment string
	pickupTime      time.Time
	deliveryTime    time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order with Confirmed status, prepaid payment, no
// feedback, and pickup/delivery timestamps set to the creation time.
//
// Parameters:
//   - id: caller-supplied unique order identifier
//   - customerID: the owning customer's account
//   - description: free-text order description
//   - weightInGrams: package weight
//   - price: order price in the smallest monetary unit
//   - createdAt: the host timestamp of the creating call
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.OrderID,
	customerID kernel.AccountID,
	description string,
	weightInGrams uint32,
	price kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		weightInGrams: weightInGrams,
		paymentType:   PaymentTypePrepaid,
		status:        Confirmed,
		feedback:      FeedbackNone,
		pickupTime:    createdAt,
		deliveryTime:  createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any point of the lifecycle, so repositories can load orders exactly
// as they were committed.
func RestoreOrder(
	id kernel.OrderID,
	customerID kernel.AccountID,
	description string,
	weightInGrams uint32,
	price kernel.Money,
	paymentType PaymentType,
	status Status,
	feedback Feedback,
	feedbackComment string,
	pickupTime time.Time,
	deliveryTime time.Time,
) (*Order, error) {
	order := &Order{
		description:     description,
		weightInGrams:   weightInGrams,
		feedbackComment: feedbackComment,
		pickupTime:      pickupTime,
		deliveryTime:    deliveryTime,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPrice(price),
		order.setPaymentType(paymentType),
		order.setStatus(status),
		order.setFeedback(feedback),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the owning customer's account identifier.
func (o *Order) CustomerID() kernel.AccountID {
	return o.customerID
}

// Description returns the free-text order description.
func (o *Order) Description() string {
	return o.description
}

// WeightInGrams returns the package weight.
func (o *Order) WeightInGrams() uint32 {
	return o.weightInGrams
}

// Price returns the escrowed order price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// PaymentType returns the order's payment scheme.
func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Feedback returns the customer's feedback category.
func (o *Order) Feedback() Feedback {
	return o.feedback
}

// FeedbackComment returns the customer's free-text feedback comment.
func (o *Order) FeedbackComment() string {
	return o.feedbackComment
}

// PickupTime returns the pickup timestamp assigned at creation.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// DeliveryTime returns the delivery timestamp assigned at creation.
func (o *Order) DeliveryTime() time.Time {
	return o.deliveryTime
}

// ChangeStatus applies the lifecycle transition table to move the order to
// target. On a rejected edge the order is left unchanged and the rejection
// reason is returned.
//
// The caller is responsible for the refund side effect implied by the new
// status (see Status.RefundDirection); ChangeStatus itself is effect-free.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// LeaveFeedback attaches the customer's feedback category and comment.
//
// Business rules:
//   - The order must be in Delivered status
//   - The feedback category must be valid
//
// Feedback does not change the order's status.
func (o *Order) LeaveFeedback(feedback Feedback, comment string) error {
	if err := feedback.Validate(); err != nil {
		return err
	}

	if o.status != Delivered {
		return ErrOrderMustHaveDeliveredStatus
	}

	o.feedback = feedback
	o.feedbackComment = comment
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.AccountID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setPaymentType(paymentType PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	o.paymentType = paymentType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setFeedback(feedback Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}
	o.feedback = feedback
	return nil
}
