package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each call.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a call's transaction boundary. Every mutation a call
// makes commits atomically through one UnitOfWork; an aborted call leaves no
// trace. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrderIndexRepository returns an OrderIndexRepository bound to the current transaction.
	OrderIndexRepository() OrderIndexRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// AdminRepository returns an AdminRepository bound to the current transaction.
	AdminRepository() AdminRepository

	// TransferOutbox returns a TransferOutbox bound to the current transaction.
	TransferOutbox() TransferOutbox

	// StorageMeter returns a StorageMeter bound to the current transaction.
	// Readings include rows written earlier in the same transaction.
	StorageMeter() StorageMeter
}
