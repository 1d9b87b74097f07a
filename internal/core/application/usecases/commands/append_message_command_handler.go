package commands

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/order"
)

// AppendMessageCommandHandler appends a message with a fresh identity and
// the current timestamp to an order's log. The log is append-only; prior
// entries are never reordered or replaced.
//
// If the order has disappeared between the send starting and the simulated
// latency elapsing, the repository's not-found error is returned and no
// message lands anywhere.
type AppendMessageCommandHandler struct {
	repo OrderRepository
}

// NewAppendMessageCommandHandler creates a handler for message append operations.
func NewAppendMessageCommandHandler(repo OrderRepository) AppendMessageCommandHandler {
	return AppendMessageCommandHandler{
		repo: repo,
	}
}

// Handle processes the append command and returns the appended message.
func (h AppendMessageCommandHandler) Handle(ctx context.Context, cmd AppendMessageCommand) (order.Message, error) {
	if err := cmd.Validate(); err != nil {
		return order.Message{}, err
	}

	existing, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Message{}, err
	}

	message, err := order.NewMessage(cmd.Text(), time.Now())
	if err != nil {
		return order.Message{}, err
	}

	if err = existing.AppendMessage(message); err != nil {
		return order.Message{}, err
	}

	if err = h.repo.Update(ctx, existing); err != nil {
		return order.Message{}, err
	}

	return message, nil
}
