package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerByAccountIDQueryHandler reads one customer profile.
type GetCustomerByAccountIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByAccountIDQueryHandler creates a handler for profile reads.
// Requires a GORM database connection for query execution.
func NewGetCustomerByAccountIDQueryHandler(db *gorm.DB) GetCustomerByAccountIDQueryHandler {
	return GetCustomerByAccountIDQueryHandler{db: db}
}

// Handle executes the query.
// Rejects reads of other accounts' profiles before touching the database.
func (h GetCustomerByAccountIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByAccountIDQuery,
) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	if !query.Caller().IsEqual(query.AccountID()) {
		return CustomerView{}, errs.NewNotAuthorizedError("accounts can only read their own profile")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			full_address,
			landmark,
			plus_code_address,
			phone,
			email,
			role,
			created_at,
			updated_at
		FROM customers
		WHERE id = ?
	`, query.AccountID().String()).Rows()
	if err != nil {
		return CustomerView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerView{}, err
		}
		return CustomerView{}, errs.NewObjectNotFoundError("customer", query.AccountID().String())
	}

	var (
		view CustomerView
		id   string
		role int
	)
	if err = rows.Scan(
		&id,
		&view.Profile.Name,
		&view.Profile.FullAddress,
		&view.Profile.Landmark,
		&view.Profile.PlusCodeAddress,
		&view.Profile.Phone,
		&view.Profile.Email,
		&role,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return CustomerView{}, err
	}

	accountID, err := kernel.NewAccountID(id)
	if err != nil {
		return CustomerView{}, err
	}
	view.ID = accountID
	view.Role = account.Role(role)

	return view, nil
}
