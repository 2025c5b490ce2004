package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand represents a customer's feedback on a delivered order.
// The attached deposit pays for the storage the feedback consumes; the
// remainder is refunded to the customer.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.AccountID
	orderID  kernel.OrderID
	feedback order.Feedback
	comment  string
	deposit  kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to attach feedback to an order.
// Validates the identifiers, the feedback category and the deposit; ownership
// and order status are checked by the handler inside the transaction.
func NewSubmitFeedbackCommand(
	caller kernel.AccountID,
	orderID kernel.OrderID,
	feedback order.Feedback,
	comment string,
	deposit kernel.Money,
) (SubmitFeedbackCommand, error) {
	feedbackCommand := SubmitFeedbackCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		feedbackCommand.setCaller(caller),
		feedbackCommand.setOrderID(orderID),
		feedbackCommand.setFeedback(feedback),
		feedbackCommand.setDeposit(deposit),
	); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return feedbackCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitFeedbackCommandIsNotConstructed if validation fails.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// Caller returns the account invoking the call.
func (c SubmitFeedbackCommand) Caller() kernel.AccountID {
	return c.caller
}

// OrderID returns the identifier of the order receiving feedback.
func (c SubmitFeedbackCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Feedback returns the feedback category.
func (c SubmitFeedbackCommand) Feedback() order.Feedback {
	return c.feedback
}

// Comment returns the free-text feedback comment.
func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}

// Deposit returns the amount attached to the call.
func (c SubmitFeedbackCommand) Deposit() kernel.Money {
	return c.deposit
}

func (c *SubmitFeedbackCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SubmitFeedbackCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitFeedbackCommand) setFeedback(feedback order.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}

	c.feedback = feedback
	return nil
}

func (c *SubmitFeedbackCommand) setDeposit(deposit kernel.Money) error {
	if err := deposit.Validate(); err != nil {
		return err
	}

	c.deposit = deposit
	return nil
}
