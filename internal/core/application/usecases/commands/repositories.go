// Package commands contains business operations that modify system state.
// It implements the Command pattern for write operations: each command is a
// validated, immutable request object and each handler applies one mutation
// to the order repository.
//
// All commands follow a consistent pattern: constructor validation (the
// command doubles as the form's draft type), a guard against zero-value
// construction, and a Handle method that performs the repository mutation.
package commands

import (
	"opsboard/internal/core/ports"
)

// OrderRepository is the storage dependency shared by all command handlers.
// It is the ports contract verbatim; commands need no transactional wrapper
// because the in-memory repository applies each mutation atomically.
type OrderRepository = ports.OrderRepository
