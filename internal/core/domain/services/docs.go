// Package services provides domain services for the dashboard system.
//
// The package includes:
//   - PickupQuoter: generates the price and driver ETA carried by a
//     successful pickup booking
//
// Domain services hold logic that doesn't naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
