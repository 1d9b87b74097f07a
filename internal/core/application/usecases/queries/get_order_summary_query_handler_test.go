package queries_test

import (
	"testing"

	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderSummaryQueryHandler_Handle(t *testing.T) {
	t.Run("counts_pending_and_in_transit_only", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{
			storedOrder(t, "OD10001", "Jane Doe", "+91 9000000000", "12 MG Road", order.Pending),
			storedOrder(t, "OD10002", "John Smith", "+91 9111111111", "44 Residency Road", order.Pending),
			storedOrder(t, "OD10003", "Priya Sharma", "+91 9876543210", "7 Brigade Road", order.InTransit),
			storedOrder(t, "OD10004", "Amit Patel", "+91 9222222222", "3 Church Street", order.Delivered),
		}, nil).Once()
		h := queries.NewGetOrderSummaryQueryHandler(repo)

		summary, err := h.Handle(ctx, queries.NewGetOrderSummaryQuery())

		require.NoError(t, err)
		assert.Equal(t, 2, summary.PendingCount)
		assert.Equal(t, 1, summary.InTransitCount)
	})

	t.Run("empty_collection_yields_zero_counts", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()
		h := queries.NewGetOrderSummaryQueryHandler(repo)

		summary, err := h.Handle(ctx, queries.NewGetOrderSummaryQuery())

		require.NoError(t, err)
		assert.Zero(t, summary.PendingCount)
		assert.Zero(t, summary.InTransitCount)
	})
}

func TestGetOrderSummaryQueryHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := queries.NewGetOrderSummaryQueryHandler(repo)

	_, err := h.Handle(t.Context(), queries.GetOrderSummaryQuery{}) // not constructed properly

	require.Error(t, err)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}
