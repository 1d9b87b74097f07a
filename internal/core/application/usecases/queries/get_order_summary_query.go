package queries

import (
	"errors"

	"opsboard/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves the dashboard's summary counters: how many
// orders are pending and how many are in transit.
//
// Example:
//
//	query := NewGetOrderSummaryQuery()
//	handler := NewGetOrderSummaryQueryHandler(repo)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get summary: %w", err)
//	}
//	fmt.Printf("%d pending, %d in transit\n", summary.PendingCount, summary.InTransitCount)
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a parameterless summary query.
func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// GetOrderSummaryQueryResponse carries the status counts shown on the
// dashboard's summary cards.
type GetOrderSummaryQueryResponse struct {
	PendingCount   int
	InTransitCount int
}
