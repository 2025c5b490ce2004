// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID              string `gorm:"primaryKey"`
	Name            string
	FullAddress     string
	Landmark        string
	PlusCodeAddress string
	Phone           string
	Email           string
	Role            int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SizeBytes       int64
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// sizeBytes computes the deterministic storage footprint of the row.
func (dto CustomerDTO) sizeBytes() int64 {
	const fixed = 1 + 8 + 8 // role and timestamps

	return int64(len(dto.ID)+
		len(dto.Name)+
		len(dto.FullAddress)+
		len(dto.Landmark)+
		len(dto.PlusCodeAddress)+
		len(dto.Phone)+
		len(dto.Email)) + fixed
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *account.Customer) CustomerDTO {
	profile := aggregate.Profile()
	dto := CustomerDTO{
		ID:              aggregate.ID().String(),
		Name:            profile.Name,
		FullAddress:     profile.FullAddress,
		Landmark:        profile.Landmark,
		PlusCodeAddress: profile.PlusCodeAddress,
		Phone:           profile.Phone,
		Email:           profile.Email,
		Role:            int(aggregate.Role()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
	dto.SizeBytes = dto.sizeBytes()

	return dto
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.NewAccountID(dto.ID)
	if err != nil {
		return nil, err
	}

	profile := account.Profile{
		Name:            dto.Name,
		FullAddress:     dto.FullAddress,
		Landmark:        dto.Landmark,
		PlusCodeAddress: dto.PlusCodeAddress,
		Phone:           dto.Phone,
		Email:           dto.Email,
	}

	return account.RestoreCustomer(id, profile, account.Role(dto.Role), dto.CreatedAt, dto.UpdatedAt)
}
