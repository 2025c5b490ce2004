package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for lifecycle
// transitions. Applies the transition table through the order aggregate and
// releases the escrowed price when the order reaches a terminal status.
//
// Accounting on a terminal transition:
//
//	surplus = price - storage cost of the update
//	Cancelled refunds the surplus to the order's customer
//	Delivered pays the surplus to the calling admin
//
// Moving to InProgress settles nothing; the price stays escrowed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UpdateOrderStatusUoWFactory
	ledger     services.DepositLedger
	clock      ports.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires an UpdateOrderStatusUoWFactory for transactional persistence, the
// deposit ledger for escrow settlement, and the host clock for timestamps.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UpdateOrderStatusUoWFactory,
	ledger services.DepositLedger,
	clock ports.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clock,
	}
}

// Handle processes the status update command.
// Verifies the caller holds the admin capability, applies the transition, and
// settles the escrow inside one transaction. A rejected edge aborts the call
// with the order unchanged.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	isAdmin, err := uow.AdminRepository().Exists(ctx, cmd.Caller())
	if err != nil {
		return err
	}
	if !isAdmin {
		return errs.NewNotAuthorizedError("only admins can update order status")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	meter := uow.StorageMeter()
	bytesBefore, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	beneficiary, settle := h.refundBeneficiary(aggregate, cmd.Caller())
	if !settle {
		return uow.Commit(ctx)
	}

	bytesAfter, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	storageCost, err := h.ledger.StorageCost(storageDelta(bytesBefore, bytesAfter))
	if err != nil {
		return err
	}

	surplus, err := h.ledger.Reconcile(aggregate.Price(), storageCost)
	if err != nil {
		return err
	}

	if err = scheduleRefund(ctx, uow.TransferOutbox(), beneficiary, surplus, h.clock.Now()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// refundBeneficiary resolves who receives the escrow surplus for the order's
// new status. The boolean reports whether the transition settles at all.
func (h *UpdateOrderStatusCommandHandler) refundBeneficiary(
	aggregate *order.Order,
	caller kernel.AccountID,
) (kernel.AccountID, bool) {
	switch aggregate.Status().RefundDirection() {
	case order.RefundToCustomer:
		return aggregate.CustomerID(), true
	case order.RefundToOperator:
		return caller, true
	default:
		return kernel.AccountID{}, false
	}
}
