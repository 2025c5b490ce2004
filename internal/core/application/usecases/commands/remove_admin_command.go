package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveAdminCommandIsNotConstructed = errors.New(
	"RemoveAdminCommand must be created via NewRemoveAdminCommand constructor",
)

// RemoveAdminCommand represents a request to revoke the admin capability from
// an account. Only the operator account may issue it.
type RemoveAdminCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.AccountID
	adminID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewRemoveAdminCommand creates a command to revoke the admin capability.
func NewRemoveAdminCommand(caller, adminID kernel.AccountID) (RemoveAdminCommand, error) {
	adminCommand := RemoveAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adminCommand.setCaller(caller),
		adminCommand.setAdminID(adminID),
	); err != nil {
		return RemoveAdminCommand{}, err
	}

	return adminCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveAdminCommandIsNotConstructed if validation fails.
func (c RemoveAdminCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAdminCommandIsNotConstructed)
}

// Caller returns the account invoking the call.
func (c RemoveAdminCommand) Caller() kernel.AccountID {
	return c.caller
}

// AdminID returns the account losing the admin capability.
func (c RemoveAdminCommand) AdminID() kernel.AccountID {
	return c.adminID
}

func (c *RemoveAdminCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RemoveAdminCommand) setAdminID(adminID kernel.AccountID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}
