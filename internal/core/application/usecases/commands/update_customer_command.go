package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to replace the caller's own
// customer profile. The whole profile is replaced in one operation; the
// attached deposit pays for any storage growth.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.AccountID
	profile account.Profile
	deposit kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update the caller's profile.
func NewUpdateCustomerCommand(
	caller kernel.AccountID,
	profile account.Profile,
	deposit kernel.Money,
) (UpdateCustomerCommand, error) {
	customerCommand := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCaller(caller),
		customerCommand.setProfile(profile),
		customerCommand.setDeposit(deposit),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCustomerCommandIsNotConstructed if validation fails.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// Caller returns the account updating its own profile.
func (c UpdateCustomerCommand) Caller() kernel.AccountID {
	return c.caller
}

// Profile returns the replacement contact fields.
func (c UpdateCustomerCommand) Profile() account.Profile {
	return c.profile
}

// Deposit returns the amount attached to the call.
func (c UpdateCustomerCommand) Deposit() kernel.Money {
	return c.deposit
}

func (c *UpdateCustomerCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *UpdateCustomerCommand) setProfile(profile account.Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.profile = profile
	return nil
}

func (c *UpdateCustomerCommand) setDeposit(deposit kernel.Money) error {
	if err := deposit.Validate(); err != nil {
		return err
	}

	c.deposit = deposit
	return nil
}
