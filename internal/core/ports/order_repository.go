package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// The repository is the single source of truth for the order collection and
// maintains most-recent-first ordering: new orders are inserted at the head
// and reads return the collection in that order. Orders are never deleted.
type OrderRepository interface {
	// Add inserts a new order aggregate at the head of the collection.
	// Fails if an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Fails with an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns a snapshot of the full collection, most recent first.
	// The repository holds no secondary indexes; filtering is the caller's job.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Exists reports whether an order with the given id is present.
	// Used by id generation to detect collisions.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)
}
