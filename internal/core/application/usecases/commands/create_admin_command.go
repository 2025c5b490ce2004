package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateAdminCommandIsNotConstructed = errors.New(
	"CreateAdminCommand must be created via NewCreateAdminCommand constructor",
)

// CreateAdminCommand represents a request to grant the admin capability to an
// account. Only the operator account may issue it.
type CreateAdminCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.AccountID
	adminID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewCreateAdminCommand creates a command to grant the admin capability.
func NewCreateAdminCommand(caller, adminID kernel.AccountID) (CreateAdminCommand, error) {
	adminCommand := CreateAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adminCommand.setCaller(caller),
		adminCommand.setAdminID(adminID),
	); err != nil {
		return CreateAdminCommand{}, err
	}

	return adminCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAdminCommandIsNotConstructed if validation fails.
func (c CreateAdminCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminCommandIsNotConstructed)
}

// Caller returns the account invoking the call.
func (c CreateAdminCommand) Caller() kernel.AccountID {
	return c.caller
}

// AdminID returns the account receiving the admin capability.
func (c CreateAdminCommand) AdminID() kernel.AccountID {
	return c.adminID
}

func (c *CreateAdminCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateAdminCommand) setAdminID(adminID kernel.AccountID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
