package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"opsboard/internal/pkg/errs"
)

const (
	// GeneratedOrderIDPrefix is the prefix of every system-generated order id.
	GeneratedOrderIDPrefix = "OD"

	generatedSuffixMin = 10000
	generatedSuffixMax = 99999
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
// Order ids must be created via NewOrderID or NewRandomOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or NewRandomOrderID constructors")

var generatedOrderIDPattern = regexp.MustCompile(`^OD\d{5}$`)

// OrderID is a value object identifying an order. System-generated ids have
// the form "OD" followed by exactly five digits; operator-supplied ids may be
// any non-empty string but must remain unique within the repository.
//
// The zero value is invalid and fails validation - use the constructors.
//
// Example:
//
//	id, err := kernel.NewOrderID("OD10001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id) // Output: OD10001
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from an operator-supplied string.
// The value is trimmed; an empty result is rejected.
func NewOrderID(value string) (OrderID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: value}, nil
}

// NewRandomOrderID generates a fresh system-assigned OrderID with a random
// five-digit suffix. Uniqueness is not guaranteed here; callers that insert
// into a repository must check for collisions and regenerate.
func NewRandomOrderID() OrderID {
	suffix := generatedSuffixMin + rand.IntN(generatedSuffixMax-generatedSuffixMin+1) //nolint:gosec // it's ok
	return OrderID{value: fmt.Sprintf("%s%d", GeneratedOrderIDPrefix, suffix)}
}

// String returns the order id text, e.g. "OD10001".
func (id OrderID) String() string {
	return id.value
}

// IsGenerated reports whether the id matches the system-generated format.
func (id OrderID) IsGenerated() bool {
	return generatedOrderIDPattern.MatchString(id.value)
}

// IsEqual compares two order ids by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
