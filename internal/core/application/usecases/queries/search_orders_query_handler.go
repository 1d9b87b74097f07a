package queries

import (
	"context"
	"strings"

	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/ports"
)

// SearchOrdersQueryHandler derives the filtered order list from the
// repository snapshot. Filtering is a pure function of the snapshot and the
// term; the repository holds no secondary indexes.
type SearchOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewSearchOrdersQueryHandler creates a handler for order search queries.
func NewSearchOrdersQueryHandler(repo ports.OrderRepository) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{repo: repo}
}

// Handle executes the search and returns the matching orders in their
// original most-recent-first order. An empty term returns the full snapshot.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if query.Term() == "" {
		return snapshot, nil
	}

	matches := make([]*order.Order, 0, len(snapshot))
	for _, o := range snapshot {
		if matchesTerm(o, query.Term()) {
			matches = append(matches, o)
		}
	}

	return matches, nil
}

// matchesTerm reports whether any of the order's searchable fields contain
// the lowercased term.
func matchesTerm(o *order.Order, term string) bool {
	return strings.Contains(strings.ToLower(o.ID().String()), term) ||
		strings.Contains(strings.ToLower(o.CustomerName()), term) ||
		strings.Contains(strings.ToLower(o.CustomerPhone().String()), term) ||
		strings.Contains(strings.ToLower(o.Address()), term)
}
