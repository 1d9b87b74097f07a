package order

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Status represents the delivery state of an order.
//
// Unlike a strict workflow machine, any of the three valid states may be set
// when an operator edits an order; the type's job is to guarantee that no
// value outside the enumerated set is ever reachable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order,
	// waiting for pickup.
	Pending

	// InTransit indicates the order has been picked up and is on its way
	// to the customer.
	InTransit

	// Delivered indicates the order has reached the customer.
	Delivered
)

// getStatusStrings returns the display string for every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
	}
}

// ParseStatus converts a display string ("Pending", "In Transit",
// "Delivered") into a Status. Used when accepting form payloads from the
// presentation layer.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending", "In Transit", or "Delivered" for valid statuses and
// "Unknown" for anything else. Implements fmt.Stringer and is safe to call
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
