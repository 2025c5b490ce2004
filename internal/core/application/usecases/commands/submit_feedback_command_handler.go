package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SubmitFeedbackCommandHandler handles the business logic for feedback
// submission. Only the order's customer may leave feedback, and only once the
// order has been delivered.
//
// Accounting:
//
//	deposit >= minimum fee, checked before any write
//	surplus = deposit - storage cost of the feedback
//	surplus > 0 refunds to the customer
type SubmitFeedbackCommandHandler struct {
	uowFactory SubmitFeedbackUoWFactory
	ledger     services.DepositLedger
	clock      ports.Clock
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback operations.
// Requires a SubmitFeedbackUoWFactory for transactional persistence, the
// deposit ledger for accounting, and the host clock for timestamps.
func NewSubmitFeedbackCommandHandler(
	uowFactory SubmitFeedbackUoWFactory,
	ledger services.DepositLedger,
	clock ports.Clock,
) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		clock:      clock,
	}
}

// Handle processes the feedback command.
// Verifies the caller owns the order, attaches the feedback through the
// aggregate, and settles the deposit inside one transaction.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.Caller()) {
		return errs.NewNotAuthorizedError("only the order's customer can leave feedback")
	}

	meter := uow.StorageMeter()
	bytesBefore, err := meter.UsedBytes(ctx)
	if err != nil {
		return err
	}

	if err = aggregate.LeaveFeedback(cmd.Feedback(), cmd.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
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

	if err = scheduleRefund(ctx, uow.TransferOutbox(), cmd.Caller(), surplus, h.clock.Now()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
