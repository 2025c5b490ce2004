package account

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Profile carries the mutable contact fields of a customer record.
// It groups the fields that UpdateProfile replaces in one operation.
type Profile struct {
	Name            string
	FullAddress     string
	Landmark        string
	PlusCodeAddress string
	Phone           string
	Email           string
}

// Customer is a registered marketplace participant who places orders.
// A customer profile must exist before any order can be created for it.
type Customer struct {
	id        kernel.AccountID
	profile   Profile
	role      Role
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer registers a customer profile for an account.
// The name is required; the remaining profile fields are free text.
func NewCustomer(id kernel.AccountID, profile Profile, createdAt time.Time) (*Customer, error) {
	customer := &Customer{
		role:          RoleCustomer,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persisted state.
func RestoreCustomer(id kernel.AccountID, profile Profile, role Role, createdAt, updatedAt time.Time) (*Customer, error) {
	customer := &Customer{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setProfile(profile),
		customer.setRole(role),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's account identifier.
func (c *Customer) ID() kernel.AccountID {
	return c.id
}

// Profile returns the customer's contact fields.
func (c *Customer) Profile() Profile {
	return c.profile
}

// Role returns the account role, always RoleCustomer for customers.
func (c *Customer) Role() Role {
	return c.role
}

// CreatedAt returns the registration timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the timestamp of the last profile update.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// UpdateProfile replaces the contact fields and stamps the update time.
func (c *Customer) UpdateProfile(profile Profile, updatedAt time.Time) error {
	if err := c.setProfile(profile); err != nil {
		return err
	}

	c.updatedAt = updatedAt
	return nil
}

func (c *Customer) setID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setProfile(profile Profile) error {
	if profile.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.profile = profile
	return nil
}

func (c *Customer) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
