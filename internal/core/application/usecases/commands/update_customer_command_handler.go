package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateCustomerCommandHandler handles customer profile updates.
// The caller can only replace its own profile; the attached deposit pays for
// any storage the larger profile consumes, and the remainder is refunded.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	ledger     services.DepositLedger
	clock      ports.Clock
}

// NewUpdateCustomerCommandHandler creates a handler for profile updates.
func NewUpdateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	ledger services.DepositLedger,
	clock ports.Clock,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clock,
	}
}

// Handle processes the profile update command.
// Loads the caller's customer aggregate, replaces the profile, stamps the
// update time, and settles the deposit inside one transaction.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Deposit().GreaterOrEqual(h.ledger.MinimumFee()) {
		return errs.NewInsufficientFundsError("attached deposit must cover the minimum fee")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	customer, err := customerRepo.Get(ctx, cmd.Caller())
	if err != nil {
		return err
	}

	meter := uow.StorageMeter()
	bytesBefore, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = customer.UpdateProfile(cmd.Profile(), now); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	bytesAfter, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	storageCost, err := h.ledger.StorageCost(storageDelta(bytesBefore, bytesAfter))
	if err != nil {
		return err
	}

	surplus, err := h.ledger.Reconcile(cmd.Deposit(), storageCost)
	if err != nil {
		return err
	}

	if err = scheduleRefund(ctx, uow.TransferOutbox(), cmd.Caller(), surplus, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
