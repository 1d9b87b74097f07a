// Package kernel provides core domain primitives for the dashboard system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for order identity, covering both system-generated
//     "OD#####" ids and operator-supplied ids
//   - Phone: A value object for validated customer phone numbers
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
