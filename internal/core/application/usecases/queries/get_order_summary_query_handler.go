package queries

import (
	"context"

	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/ports"
)

// GetOrderSummaryQueryHandler counts orders by status from the repository
// snapshot. The counts are derived on demand, never stored.
type GetOrderSummaryQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderSummaryQueryHandler creates a handler for summary queries.
func NewGetOrderSummaryQueryHandler(repo ports.OrderRepository) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{repo: repo}
}

// Handle executes the query and returns the pending and in-transit counts.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	snapshot, err := h.repo.GetAll(ctx)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var response GetOrderSummaryQueryResponse
	for _, o := range snapshot {
		switch o.Status() {
		case order.Pending:
			response.PendingCount++
		case order.InTransit:
			response.InTransitCount++
		default:
		}
	}

	return response, nil
}
