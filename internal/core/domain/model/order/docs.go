// Package order provides domain entities and business logic for order management
// in the fulfillment ledger. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Feedback: Customer feedback categories attached to delivered orders
//
// Key business rules:
//   - Orders must have a valid unique identifier, an owning customer, and a price
//   - Order status follows a defined workflow: Confirmed -> InProgress -> Delivered,
//     with cancellation allowed from Confirmed and InProgress
//   - Delivered and Cancelled are terminal states
//   - Feedback can only be submitted for Delivered orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
