package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransferDispatchJob manages the scheduled payout of committed refunds.
// Runs every second to hand pending transfers to the payment gateway.
type TransferDispatchJob struct {
	handler commands.DispatchTransfersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransferDispatchJob creates a new job for dispatching refunds.
// Uses DispatchTransfersCommandHandler to resolve the outbox every second.
func NewTransferDispatchJob(handler commands.DispatchTransfersCommandHandler, logger *slog.Logger) *TransferDispatchJob {
	return &TransferDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "transfer_dispatch_job"),
	}
}

// Start begins the transfer dispatch job to run every second.
func (j *TransferDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchTransfersCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A gateway failure leaves the transfers pending for the next run
			j.logger.ErrorContext(ctx, "Transfer dispatch job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transfer dispatch job started (running every second)")
	return nil
}

// Stop stops the transfer dispatch job.
func (j *TransferDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transfer dispatch job stopped")
}
