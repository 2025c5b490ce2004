package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateAdminCommandHandler handles granting the admin capability.
// Only the configured operator account may grant it; this keeps the admin
// registry bootstrap under a single well-known identity.
type CreateAdminCommandHandler struct {
	uowFactory AdminUoWFactory
	operatorID kernel.AccountID
	clock      ports.Clock
}

// NewCreateAdminCommandHandler creates a handler for admin grants.
// The operatorID is the only account authorized to issue them.
func NewCreateAdminCommandHandler(
	uowFactory AdminUoWFactory,
	operatorID kernel.AccountID,
	clock ports.Clock,
) CreateAdminCommandHandler {
	return CreateAdminCommandHandler{
		uowFactory: uowFactory,
		operatorID: operatorID,
		clock:      clock,
	}
}

// Handle processes the admin grant command.
// Rejects callers other than the operator and duplicate grants.
func (h *CreateAdminCommandHandler) Handle(ctx context.Context, cmd CreateAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.operatorID) {
		return errs.NewNotAuthorizedError("only the operator can grant the admin capability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	adminRepo := uow.AdminRepository()
	granted, err := adminRepo.Exists(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if granted {
		return errs.NewValueIsInvalidError("account already holds the admin capability")
	}

	admin, err := account.NewAdmin(cmd.AdminID(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = adminRepo.Add(ctx, admin); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
