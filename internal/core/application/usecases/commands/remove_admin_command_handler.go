package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RemoveAdminCommandHandler handles revoking the admin capability.
// Only the configured operator account may revoke it.
type RemoveAdminCommandHandler struct {
	uowFactory AdminUoWFactory
	operatorID kernel.AccountID
}

// NewRemoveAdminCommandHandler creates a handler for admin revocations.
func NewRemoveAdminCommandHandler(
	uowFactory AdminUoWFactory,
	operatorID kernel.AccountID,
) RemoveAdminCommandHandler {
	return RemoveAdminCommandHandler{
		uowFactory: uowFactory,
		operatorID: operatorID,
	}
}

// Handle processes the admin revocation command.
// Revoking an account that is not an admin is reported as not found.
func (h *RemoveAdminCommandHandler) Handle(ctx context.Context, cmd RemoveAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.operatorID) {
		return errs.NewNotAuthorizedError("only the operator can revoke the admin capability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AdminRepository().Remove(ctx, cmd.AdminID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
