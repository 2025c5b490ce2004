package account

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrAdminIsNotConstructed is returned when an Admin instance was not
// created through NewAdmin or RestoreAdmin.
var ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin constructor")

// Admin is an account holding the administrative capability: only admins may
// drive the order lifecycle and read the full order directory.
type Admin struct {
	id        kernel.AccountID
	role      Role
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewAdmin grants the administrative capability to an account.
func NewAdmin(id kernel.AccountID, createdAt time.Time) (*Admin, error) {
	admin := &Admin{
		role:          RoleAdmin,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := admin.setID(id); err != nil {
		return nil, err
	}

	return admin, nil
}

// RestoreAdmin reconstructs an Admin from persisted state.
func RestoreAdmin(id kernel.AccountID, createdAt, updatedAt time.Time) (*Admin, error) {
	admin := &Admin{
		role:          RoleAdmin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := admin.setID(id); err != nil {
		return nil, err
	}

	return admin, nil
}

// Validate ensures the Admin was properly constructed.
func (a *Admin) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdminIsNotConstructed
	}
	return nil
}

// ID returns the admin's account identifier.
func (a *Admin) ID() kernel.AccountID {
	return a.id
}

// Role returns the account role, always RoleAdmin for admins.
func (a *Admin) Role() Role {
	return a.role
}

// CreatedAt returns the timestamp the capability was granted.
func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the timestamp of the last record change.
func (a *Admin) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Admin) setID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}
