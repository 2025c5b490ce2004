// Package transferrepo persists the refund outbox. Rows are written inside
// the transaction that scheduled the refund and flipped to dispatched by the
// payout job, so an interrupted process never loses or repeats a refund.
package transferrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// TransferDTO represents the database structure for persisting transfers.
type TransferDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Beneficiary string
	Amount      string `gorm:"type:numeric(39,0)"`
	Status      int    `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for transfer entities.
func (TransferDTO) TableName() string {
	return "transfers"
}

// fromDomain converts a transfer domain aggregate to its database representation.
func fromDomain(aggregate *transfer.Transfer) TransferDTO {
	return TransferDTO{
		ID:          aggregate.ID(),
		Beneficiary: aggregate.Beneficiary().String(),
		Amount:      aggregate.Amount().String(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a transfer domain aggregate.
func toDomain(dto TransferDTO) (*transfer.Transfer, error) {
	beneficiary, err := kernel.NewAccountID(dto.Beneficiary)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromString(dto.Amount)
	if err != nil {
		return nil, err
	}

	return transfer.RestoreTransfer(dto.ID, beneficiary, amount, transfer.Status(dto.Status), dto.CreatedAt)
}
