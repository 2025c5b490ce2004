package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Escrows the order price out of the attached deposit, charges the storage
// the new records consume, and refunds the remainder to the caller.
//
// Accounting:
//
//	deposit >= price + minimum fee, checked before any write
//	surplus = deposit - price - storage cost
//	surplus > 0 schedules a refund to the caller
//
// A deposit that cannot cover price plus storage aborts the whole call, so
// a failed creation never takes money and never leaves records behind.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	ledger     services.DepositLedger
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence, the deposit
// ledger for accounting, and the host clock for timestamps.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	ledger services.DepositLedger,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Verifies the caller is the registered customer placing their own order,
// rejects duplicate order identifiers, writes the order and its index entry,
// and settles the deposit inside one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError("orders can only be created for the caller's own account")
	}

	minimumDeposit, err := cmd.Price().Add(h.ledger.MinimumFee())
	if err != nil {
		return err
	}

	if !cmd.Deposit().GreaterOrEqual(minimumDeposit) {
		return errs.NewInsufficientFundsError("attached deposit must cover the order price plus the minimum fee")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registered, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !registered {
		return errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	orderRepo := uow.OrderRepository()
	taken, err := orderRepo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueIsInvalidError("order id is already in use")
	}

	meter := uow.StorageMeter()
	bytesBefore, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	now := h.clock.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Description(),
		cmd.WeightInGrams(),
		cmd.Price(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.OrderIndexRepository().Append(ctx, cmd.CustomerID(), cmd.OrderID()); err != nil {
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

	required, err := cmd.Price().Add(storageCost)
	if err != nil {
		return err
	}

	surplus, err := h.ledger.Reconcile(cmd.Deposit(), required)
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
