package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new fulfillment order.
// Carries the caller identity and the attached deposit alongside the order
// fields; the handler settles the deposit against price, fee and storage cost.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, orderID, customerID,
//	    "two crates of oranges", 12000, price, deposit)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ledger, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller        kernel.AccountID
	orderID       kernel.OrderID
	customerID    kernel.AccountID
	description   string
	weightInGrams uint32
	price         kernel.Money
	deposit       kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers and monetary amounts; authorization and deposit
// sufficiency are checked by the handler inside the transaction.
func NewCreateOrderCommand(
	caller kernel.AccountID,
	orderID kernel.OrderID,
	customerID kernel.AccountID,
	description string,
	weightInGrams uint32,
	price kernel.Money,
	deposit kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description:   description,
		weightInGrams: weightInGrams,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCaller(caller),
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setPrice(price),
		orderCommand.setDeposit(deposit),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Caller returns the account invoking the call.
func (c CreateOrderCommand) Caller() kernel.AccountID {
	return c.caller
}

// OrderID returns the caller-supplied order identifier.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerID returns the account the order is placed for.
func (c CreateOrderCommand) CustomerID() kernel.AccountID {
	return c.customerID
}

// Description returns the free-text order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// WeightInGrams returns the package weight.
func (c CreateOrderCommand) WeightInGrams() uint32 {
	return c.weightInGrams
}

// Price returns the order price to be escrowed.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Deposit returns the amount attached to the call.
func (c CreateOrderCommand) Deposit() kernel.Money {
	return c.deposit
}

func (c *CreateOrderCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.AccountID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setDeposit(deposit kernel.Money) error {
	if err := deposit.Validate(); err != nil {
		return err
	}

	c.deposit = deposit
	return nil
}
