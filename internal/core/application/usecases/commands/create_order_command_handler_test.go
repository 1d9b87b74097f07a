package commands_test

import (
	"context"
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		"OD10001", "Jane Doe", "+91 9000000000", "12 MG Road, Bengaluru", "Pending", time.Time{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "OD10001", created.ID().String())
	require.Len(t, created.Messages(), 1)
	require.Equal(t, order.CreatedMessageText, created.Messages()[0].Text())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GeneratesIDWhenEmpty(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		"", "Jane Doe", "+91 9000000000", "12 MG Road, Bengaluru", "Pending", time.Time{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Exists", ctx, mock.AnythingOfType("kernel.OrderID")).Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(repo)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, created.ID().IsGenerated())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RegeneratesOnCollision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		"", "Jane Doe", "+91 9000000000", "12 MG Road, Bengaluru", "Pending", time.Time{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Exists", ctx, mock.AnythingOfType("kernel.OrderID")).Return(true, nil).Once(),
		repo.On("Exists", ctx, mock.AnythingOfType("kernel.OrderID")).Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(repo)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DefaultsPickupTimeToNow(t *testing.T) {
	ctx := t.Context()
	before := time.Now()
	cmd, err := commands.NewCreateOrderCommand(
		"OD10001", "Jane Doe", "+91 9000000000", "12 MG Road, Bengaluru", "Pending", time.Time{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.False(t, created.PickupTime().Before(before))
	require.False(t, created.PickupTime().After(time.Now()))
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{}) // not constructed properly

	require.Error(t, err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		"OD10001", "Jane Doe", "+91 9000000000", "12 MG Road, Bengaluru", "Pending", time.Time{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewValueIsInvalidError("orderId already exists: OD10001")).Once()

	h := commands.NewCreateOrderCommandHandler(repo)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
