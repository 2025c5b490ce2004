package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles customer self-registration.
// An account registers its own profile exactly once; re-registration is
// rejected so a profile cannot be silently replaced.
//
// Accounting:
//
//	deposit >= minimum fee, checked before any write
//	surplus = deposit - storage cost of the profile
//	surplus > 0 refunds to the caller
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	ledger     services.DepositLedger
	clock      ports.Clock
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	ledger services.DepositLedger,
	clock ports.Clock,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clock,
	}
}

// Handle processes the registration command.
// Creates the customer aggregate under the caller's own account identifier
// and settles the deposit inside one transaction.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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
	registered, err := customerRepo.Exists(ctx, cmd.Caller())
	if err != nil {
		return err
	}
	if registered {
		return errs.NewValueIsInvalidError("account is already registered as a customer")
	}

	meter := uow.StorageMeter()
	bytesBefore, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	customer, err := account.NewCustomer(cmd.Caller(), cmd.Profile(), now)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, customer); err != nil {
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
