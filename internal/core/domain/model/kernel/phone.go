package kernel

import (
	"regexp"
	"strings"

	"opsboard/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"Phone must be created via NewPhone constructor")

// phonePattern accepts an optional leading "+", a digit, and at least nine
// further digits, spaces, or dashes.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\s-]{9,}$`)

// Phone is a value object holding a validated customer phone number.
// The zero value is invalid and fails validation - use NewPhone.
//
// Example:
//
//	phone, err := kernel.NewPhone("+91 9000000000")
//	if err != nil {
//	    // Handle validation error
//	}
type Phone struct {
	value string
}

// NewPhone creates a Phone from user input. The value is trimmed; an empty
// result is rejected as required, a non-matching one as invalid.
func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("customerPhone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidError("customerPhone")
	}
	return Phone{value: value}, nil
}

// String returns the phone number text.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two phone numbers by value.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate checks that the Phone was properly constructed.
// Returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
