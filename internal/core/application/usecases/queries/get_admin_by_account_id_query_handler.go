package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAdminByAccountIDQueryHandler reads one admin record.
type GetAdminByAccountIDQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminByAccountIDQueryHandler creates a handler for admin record reads.
// Requires a GORM database connection for query execution.
func NewGetAdminByAccountIDQueryHandler(db *gorm.DB) GetAdminByAccountIDQueryHandler {
	return GetAdminByAccountIDQueryHandler{db: db}
}

// Handle executes the query.
// Callers outside the admin registry are rejected before the lookup.
func (h GetAdminByAccountIDQueryHandler) Handle(
	ctx context.Context,
	query GetAdminByAccountIDQuery,
) (AdminView, error) {
	if err := query.Validate(); err != nil {
		return AdminView{}, err
	}

	isAdmin, err := hasAdminCapability(ctx, h.db, query.Caller())
	if err != nil {
		return AdminView{}, err
	}
	if !isAdmin {
		return AdminView{}, errs.NewNotAuthorizedError("only admins can inspect the admin registry")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			created_at,
			updated_at
		FROM admins
		WHERE id = ?
	`, query.AccountID().String()).Rows()
	if err != nil {
		return AdminView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AdminView{}, err
		}
		return AdminView{}, errs.NewObjectNotFoundError("admin", query.AccountID().String())
	}

	var (
		view AdminView
		id   string
		role int
	)
	if err = rows.Scan(&id, &role, &view.CreatedAt, &view.UpdatedAt); err != nil {
		return AdminView{}, err
	}

	accountID, err := kernel.NewAccountID(id)
	if err != nil {
		return AdminView{}, err
	}
	view.ID = accountID
	view.Role = account.Role(role)

	return view, nil
}
