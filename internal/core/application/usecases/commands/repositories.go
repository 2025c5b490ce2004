// Package commands contains business operations that modify ledger state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// deposit accounting, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest composite it needs, so tests mock only
// the repositories a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order directory within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderIndexRepoFactory provides access to the per-customer order index within a transaction.
	OrderIndexRepoFactory interface {
		OrderIndexRepository() ports.OrderIndexRepository
	}

	// CustomerRepoFactory provides access to the customer registry within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AdminRepoFactory provides access to the admin registry within a transaction.
	AdminRepoFactory interface {
		AdminRepository() ports.AdminRepository
	}

	// TransferOutboxFactory provides access to the refund outbox within a transaction.
	TransferOutboxFactory interface {
		TransferOutbox() ports.TransferOutbox
	}

	// StorageMeterFactory provides access to the storage meter within a transaction.
	// Meter readings include rows written earlier in the same transaction.
	StorageMeterFactory interface {
		StorageMeter() ports.StorageMeter
	}

	// CreateOrderUoW manages transactions for order creation: the order
	// directory, the customer index, the customer registry for the
	// registration check, the outbox for the change refund, and the meter
	// for storage pricing.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderIndexRepoFactory
		CustomerRepoFactory
		TransferOutboxFactory
		StorageMeterFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// UpdateOrderStatusUoW manages transactions for lifecycle transitions:
	// the order directory, the admin registry for the capability check, the
	// outbox for escrow release, and the meter for storage pricing.
	UpdateOrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		AdminRepoFactory
		TransferOutboxFactory
		StorageMeterFactory
	}

	// UpdateOrderStatusUoWFactory creates new status-update unit of work instances.
	UpdateOrderStatusUoWFactory interface {
		Create() UpdateOrderStatusUoW
	}

	// SubmitFeedbackUoW manages transactions for feedback submission.
	SubmitFeedbackUoW interface {
		TxManager
		OrderRepoFactory
		TransferOutboxFactory
		StorageMeterFactory
	}

	// SubmitFeedbackUoWFactory creates new feedback unit of work instances.
	SubmitFeedbackUoWFactory interface {
		Create() SubmitFeedbackUoW
	}

	// CustomerUoW manages transactions for customer registry operations:
	// the registry itself, the outbox for the deposit refund, and the meter
	// for storage pricing.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		TransferOutboxFactory
		StorageMeterFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// AdminUoW manages transactions for admin registry operations.
	AdminUoW interface {
		TxManager
		AdminRepoFactory
	}

	// AdminUoWFactory creates new admin unit of work instances.
	AdminUoWFactory interface {
		Create() AdminUoW
	}

	// DispatchTransfersUoW manages transactions for refund dispatch.
	DispatchTransfersUoW interface {
		TxManager
		TransferOutboxFactory
	}

	// DispatchTransfersUoWFactory creates new dispatch unit of work instances.
	DispatchTransfersUoWFactory interface {
		Create() DispatchTransfersUoW
	}
)
