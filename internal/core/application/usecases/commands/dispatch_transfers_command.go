package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrDispatchTransfersCommandIsNotConstructed = errors.New(
	"DispatchTransfersCommand must be created via NewDispatchTransfersCommand constructor",
)

// DispatchTransfersCommand triggers payout of all pending refunds.
// This batch operation hands committed transfers to the payment gateway and
// marks them dispatched.
//
// Example:
//
//	cmd := NewDispatchTransfersCommand()
//	handler := NewDispatchTransfersCommandHandler(uowFactory, gateway)
//
//	// Run periodically to drain the outbox
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Refund dispatch failed: %v", err)
//	}
type DispatchTransfersCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchTransfersCommand creates a command to drain the refund outbox.
// This is a parameterless command that processes all pending transfers.
func NewDispatchTransfersCommand() DispatchTransfersCommand {
	command := DispatchTransfersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchTransfersCommandIsNotConstructed if validation fails.
func (c *DispatchTransfersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTransfersCommandIsNotConstructed)
}
