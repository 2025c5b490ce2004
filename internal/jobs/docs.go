// Package jobs provides scheduled background tasks for the fulfillment ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ledger.
//
// # Available Jobs
//
// 1. TransferDispatchJob - Runs every second to pay out committed refunds from the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchTransfersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. Refunds are scheduled inside the transaction that earned them,
// so a tight dispatch loop keeps payout latency low without risking double
// payment.
//
// # Error Handling
//
// - A gateway failure aborts the batch and leaves undispatched transfers pending
// - The next run retries from the oldest pending transfer
// - Failed job starts are reported to the caller
package jobs
