// Package memstore provides the in-memory implementation of the order
// repository. The process's order collection lives entirely here; there is
// no persistence beyond process lifetime by design.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"
)

// OrderRepository is an in-memory OrderRepository. Orders are kept in a
// slice in most-recent-first order; Add prepends. A mutex keeps mutations
// atomic with respect to snapshot reads.
//
// Aggregates are cloned at every boundary: writes store a detached copy and
// reads hand one out. Callers may freely mutate what they passed in or got
// back; the stored aggregate only ever changes by an Update swapping it
// wholesale, so readers never share memory with an in-place edit.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Add inserts a new order at the head of the collection.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("id %s already exists", aggregate.ID()))
	}

	r.orders = append([]*order.Order{aggregate.Clone()}, r.orders...)
	return nil
}

// Update replaces the stored order with the same id.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.orders[i] = aggregate.Clone()
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return r.orders[i].Clone(), nil
}

// GetAll returns a snapshot of the collection, most recent first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*order.Order, len(r.orders))
	for i, o := range r.orders {
		snapshot[i] = o.Clone()
	}
	return snapshot, nil
}

// Exists reports whether an order with the given id is present.
func (r *OrderRepository) Exists(_ context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id) >= 0, nil
}

// indexOf returns the position of the order with the given id, or -1.
// Callers must hold the lock.
func (r *OrderRepository) indexOf(id kernel.OrderID) int {
	for i, o := range r.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
