package queries

import (
	"errors"
	"strings"

	"opsboard/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery filters the order collection by a free-text term.
//
// Matching is a case-insensitive substring check against the order id,
// customer name, customer phone, or address (logical OR across fields).
// An empty or whitespace-only term short-circuits to the full collection.
// There is no fuzzy matching and no ranking; the collection's original
// most-recent-first order is preserved.
//
// Example:
//
//	query := NewSearchOrdersQuery("jane")
//	handler := NewSearchOrdersQueryHandler(repo)
//
//	matches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("search failed: %w", err)
//	}
//	fmt.Printf("Found %d matching orders\n", len(matches))
type SearchOrdersQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a query for the given search term.
// The term is lowercased and trimmed; any string, including "", is valid.
func NewSearchOrdersQuery(term string) SearchOrdersQuery {
	return SearchOrdersQuery{
		term:  strings.ToLower(strings.TrimSpace(term)),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Term returns the normalized search term.
func (q SearchOrdersQuery) Term() string {
	return q.term
}
