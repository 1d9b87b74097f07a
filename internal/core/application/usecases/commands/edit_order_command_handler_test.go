package commands_test

import (
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+91 9000000000")
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, "Jane Doe", phone, "12 MG Road, Bengaluru", order.Pending, time.Now())
	require.NoError(t, err)
	return o
}

func TestEditOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := existingOrder(t, "OD10001")
	cmd, err := commands.NewEditOrderCommand(
		existing.ID(), "John Smith", "+91 9111111111", "44 Residency Road", "Delivered",
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
	)

	h := commands.NewEditOrderCommandHandler(repo)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "John Smith", updated.CustomerName())
	require.Equal(t, "+91 9111111111", updated.CustomerPhone().String())
	require.Equal(t, "44 Residency Road", updated.Address())
	require.Equal(t, order.Delivered, updated.Status())
	repo.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID, err := kernel.NewOrderID("OD99999")
	require.NoError(t, err)
	cmd, err := commands.NewEditOrderCommand(
		orderID, "John Smith", "+91 9111111111", "44 Residency Road", "Pending",
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()

	h := commands.NewEditOrderCommandHandler(repo)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := commands.NewEditOrderCommandHandler(repo)

	_, err := h.Handle(t.Context(), commands.EditOrderCommand{}) // not constructed properly

	require.Error(t, err)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
