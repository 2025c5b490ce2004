// Package adminrepo provides data transfer objects and mapping functions
// for admin record persistence.
package adminrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
)

// AdminDTO represents the database structure for persisting admin records.
type AdminDTO struct {
	ID        string `gorm:"primaryKey"`
	Role      int
	CreatedAt time.Time
	UpdatedAt time.Time
	SizeBytes int64
}

// TableName specifies the database table name for admin entities.
func (AdminDTO) TableName() string {
	return "admins"
}

// sizeBytes computes the deterministic storage footprint of the row.
func (dto AdminDTO) sizeBytes() int64 {
	const fixed = 1 + 8 + 8 // role and timestamps

	return int64(len(dto.ID)) + fixed
}

// fromDomain converts an admin domain aggregate to its database representation.
func fromDomain(aggregate *account.Admin) AdminDTO {
	dto := AdminDTO{
		ID:        aggregate.ID().String(),
		Role:      int(aggregate.Role()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	dto.SizeBytes = dto.sizeBytes()

	return dto
}

// toDomain converts a database DTO to an admin domain aggregate.
func toDomain(dto AdminDTO) (*account.Admin, error) {
	id, err := kernel.NewAccountID(dto.ID)
	if err != nil {
		return nil, err
	}

	return account.RestoreAdmin(id, dto.CreatedAt, dto.UpdatedAt)
}
