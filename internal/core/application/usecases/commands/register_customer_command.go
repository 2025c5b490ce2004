package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register the caller's own
// customer profile. Registration is a prerequisite for placing orders; the
// attached deposit pays for the storage the profile consumes.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.AccountID
	profile account.Profile
	deposit kernel.Money

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register the caller as a
// customer. The profile name is required; the remaining fields are free text.
func NewRegisterCustomerCommand(
	caller kernel.AccountID,
	profile account.Profile,
	deposit kernel.Money,
) (RegisterCustomerCommand, error) {
	customerCommand := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCaller(caller),
		customerCommand.setProfile(profile),
		customerCommand.setDeposit(deposit),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCustomerCommandIsNotConstructed if validation fails.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Caller returns the account registering itself.
func (c RegisterCustomerCommand) Caller() kernel.AccountID {
	return c.caller
}

// Profile returns the contact fields to register.
func (c RegisterCustomerCommand) Profile() account.Profile {
	return c.profile
}

// Deposit returns the amount attached to the call.
func (c RegisterCustomerCommand) Deposit() kernel.Money {
	return c.deposit
}

func (c *RegisterCustomerCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RegisterCustomerCommand) setProfile(profile account.Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.profile = profile
	return nil
}

func (c *RegisterCustomerCommand) setDeposit(deposit kernel.Money) error {
	if err := deposit.Validate(); err != nil {
		return err
	}

	c.deposit = deposit
	return nil
}
