// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, which keeps validated objects from being bypassed by direct
// struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value fails validation, so any struct embedding a guard must be
// built by a factory function that calls NewConstructorGuard.
//
// Example:
//
//	type SearchOrdersQuery struct {
//	    term  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSearchOrdersQuery(term string) SearchOrdersQuery {
//	    return SearchOrdersQuery{term: term, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q SearchOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
