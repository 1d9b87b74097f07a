// Package order provides domain entities for delivery order management.
// It implements the Order aggregate root with its delivery status and
// append-only customer-facing message log.
//
// The package includes:
//   - Order: The aggregate root owning identity, customer details, status, and messages
//   - Status: The enumerated delivery state (Pending, In Transit, Delivered)
//   - Message: An immutable entry in the order's customer-facing log
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer details, and address
//   - Only customer name, phone, address, and status are mutable after creation
//   - Identity and pickup time are fixed at creation
//   - The message log is append-only; entries are never edited, removed, or reordered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
