package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// DispatchTransfersCommandHandler drains the refund outbox.
// Hands each pending transfer to the payment gateway and marks it dispatched.
// A gateway failure aborts the batch; transfers already handed over in the
// aborted batch stay pending and are retried on the next run, so the gateway
// must tolerate repeated payout requests for the same transfer.
type DispatchTransfersCommandHandler struct {
	uowFactory DispatchTransfersUoWFactory
	gateway    ports.PaymentGateway
}

// NewDispatchTransfersCommandHandler creates a handler for refund dispatch.
// Requires a DispatchTransfersUoWFactory for outbox persistence and the
// payment gateway performing the payouts.
func NewDispatchTransfersCommandHandler(
	uowFactory DispatchTransfersUoWFactory,
	gateway ports.PaymentGateway,
) DispatchTransfersCommandHandler {
	return DispatchTransfersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the dispatch command.
// Retrieves all pending transfers oldest first, pays each out through the
// gateway and persists the dispatched status within a single transaction.
func (h *DispatchTransfersCommandHandler) Handle(ctx context.Context, cmd DispatchTransfersCommand) error {
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

	outbox := uow.TransferOutbox()
	pending, err := outbox.GetAllPending(ctx)
	if err != nil {
		return err
	}

	for _, refund := range pending {
		if err = h.gateway.Transfer(ctx, refund.Beneficiary(), refund.Amount()); err != nil {
			return err
		}

		if err = refund.MarkDispatched(); err != nil {
			return err
		}

		if err = outbox.Update(ctx, refund); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
