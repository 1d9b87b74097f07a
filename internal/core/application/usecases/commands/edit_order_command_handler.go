package commands

import (
	"context"

	"opsboard/internal/core/domain/model/order"
)

// EditOrderCommandHandler applies an edit-order patch to an existing order.
// Only the four mutable fields change; the message log and pickup time are
// untouched. Editing an order that no longer exists surfaces the
// repository's not-found error for the caller to handle gracefully.
type EditOrderCommandHandler struct {
	repo OrderRepository
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(repo OrderRepository) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		repo: repo,
	}
}

// Handle processes the edit command and returns the updated order.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.UpdateDetails(
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Address(),
		cmd.Status(),
	); err != nil {
		return nil, err
	}

	if err = h.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
