package commands

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The handler assigns a system-generated id when the form left the id empty
// (regenerating on the rare collision with an existing id), attaches the
// single initial system message, and inserts the new order at the head of
// the collection.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo)
//	cmd, _ := NewCreateOrderCommand("", "Jane Doe", "+91 9000000000",
//	    "12 MG Road, Bengaluru", "Pending", time.Time{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommandHandler struct {
	repo OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(repo OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo: repo,
	}
}

// Handle processes the order creation command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := h.resolveID(ctx, cmd.RequestedID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pickupTime := cmd.PickupTime()
	if pickupTime.IsZero() {
		pickupTime = now
	}

	newOrder, err := order.NewOrder(
		id,
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Address(),
		cmd.Status(),
		pickupTime,
	)
	if err != nil {
		return nil, err
	}

	created, err := order.NewMessage(order.CreatedMessageText, now)
	if err != nil {
		return nil, err
	}
	if err = newOrder.AppendMessage(created); err != nil {
		return nil, err
	}

	if err = h.repo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveID returns the operator-supplied id, or generates a fresh one that
// does not collide with any existing order.
func (h CreateOrderCommandHandler) resolveID(ctx context.Context, requestedID string) (kernel.OrderID, error) {
	if requestedID != "" {
		return kernel.NewOrderID(requestedID)
	}

	for {
		id := kernel.NewRandomOrderID()
		exists, err := h.repo.Exists(ctx, id)
		if err != nil {
			return kernel.OrderID{}, err
		}
		if !exists {
			return id, nil
		}
	}
}
