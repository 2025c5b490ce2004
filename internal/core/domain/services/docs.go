// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment ledger. It implements
// business rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DepositLedger: A domain service for pricing storage and reconciling attached deposits
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
