package memstore_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"opsboard/internal/adapters/out/memstore"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id, name string) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+91 9000000000")
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, name, phone, "12 MG Road, Bengaluru", order.Pending, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderRepository_Add(t *testing.T) {
	t.Run("inserts_at_head", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()

		require.NoError(t, repo.Add(ctx, newOrder(t, "OD10001", "Jane Doe")))
		require.NoError(t, repo.Add(ctx, newOrder(t, "OD10002", "John Smith")))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "OD10002", all[0].ID().String())
		assert.Equal(t, "OD10001", all[1].ID().String())
	})

	t.Run("rejects_duplicate_id", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "OD10001", "Jane Doe")))

		err := repo.Add(ctx, newOrder(t, "OD10001", "John Smith"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, "orderId")
		assert.ErrorContains(t, err, "OD10001 already exists")

		all, getErr := repo.GetAll(ctx)
		require.NoError(t, getErr)
		assert.Len(t, all, 1)
	})

	t.Run("detaches_from_callers_aggregate", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		o := newOrder(t, "OD10001", "Jane Doe")
		require.NoError(t, repo.Add(ctx, o))

		phone, err := kernel.NewPhone("+91 9111111111")
		require.NoError(t, err)
		require.NoError(t, o.UpdateDetails("John Smith", phone, "44 Residency Road", order.InTransit))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.CustomerName())
		assert.Equal(t, order.Pending, got.Status())
	})

	t.Run("rejects_unconstructed_order", func(t *testing.T) {
		repo := memstore.NewOrderRepository()

		err := repo.Add(t.Context(), &order.Order{})

		require.Error(t, err)
	})
}

func TestOrderRepository_Update(t *testing.T) {
	t.Run("replaces_existing_order", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		o := newOrder(t, "OD10001", "Jane Doe")
		require.NoError(t, repo.Add(ctx, o))

		phone, err := kernel.NewPhone("+91 9111111111")
		require.NoError(t, err)
		require.NoError(t, o.UpdateDetails("John Smith", phone, "44 Residency Road", order.InTransit))
		require.NoError(t, repo.Update(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "John Smith", got.CustomerName())
		assert.Equal(t, order.InTransit, got.Status())
	})

	t.Run("fails_for_missing_order", func(t *testing.T) {
		repo := memstore.NewOrderRepository()

		err := repo.Update(t.Context(), newOrder(t, "OD10001", "Jane Doe"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRepository_Get(t *testing.T) {
	t.Run("returns_stored_order", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		o := newOrder(t, "OD10001", "Jane Doe")
		require.NoError(t, repo.Add(ctx, o))

		got, err := repo.Get(ctx, o.ID())

		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("fails_for_missing_order", func(t *testing.T) {
		repo := memstore.NewOrderRepository()
		id, err := kernel.NewOrderID("OD99999")
		require.NoError(t, err)

		_, err = repo.Get(t.Context(), id)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("fails_for_zero_value_id", func(t *testing.T) {
		repo := memstore.NewOrderRepository()

		_, err := repo.Get(t.Context(), kernel.OrderID{})

		require.Error(t, err)
	})

	t.Run("returns_detached_copy", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		o := newOrder(t, "OD10001", "Jane Doe")
		require.NoError(t, repo.Add(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)

		// Mutating what Get handed out must not leak into the store until
		// the caller commits it through Update.
		phone, err := kernel.NewPhone("+91 9111111111")
		require.NoError(t, err)
		require.NoError(t, got.UpdateDetails("John Smith", phone, "44 Residency Road", order.InTransit))
		message, err := order.NewMessage("Your order is out for delivery.", time.Now())
		require.NoError(t, err)
		require.NoError(t, got.AppendMessage(message))

		reread, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", reread.CustomerName())
		assert.Empty(t, reread.Messages())

		require.NoError(t, repo.Update(ctx, got))
		committed, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "John Smith", committed.CustomerName())
		assert.Len(t, committed.Messages(), 1)
	})
}

func TestOrderRepository_GetAll(t *testing.T) {
	t.Run("empty_repository_returns_empty_snapshot", func(t *testing.T) {
		repo := memstore.NewOrderRepository()

		all, err := repo.GetAll(t.Context())

		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("snapshot_is_detached_from_internal_state", func(t *testing.T) {
		ctx := t.Context()
		repo := memstore.NewOrderRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "OD10001", "Jane Doe")))

		snapshot, err := repo.GetAll(ctx)
		require.NoError(t, err)
		snapshot[0] = nil

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, all[0])
	})
}

// Exercises edits racing snapshot readers; meaningful under the race
// detector. Readers touch every field of every aggregate while a writer
// loops Get/UpdateDetails/AppendMessage/Update, which would flag any shared
// mutable state between the store and what it hands out.
func TestOrderRepository_ConcurrentReadersAndWriters(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	o := newOrder(t, "OD10001", "Jane Doe")
	require.NoError(t, repo.Add(ctx, o))

	phone, err := kernel.NewPhone("+91 9111111111")
	require.NoError(t, err)

	var wg sync.WaitGroup
	start := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < 200; i++ {
			edited, getErr := repo.Get(ctx, o.ID())
			if getErr != nil {
				return
			}
			if updErr := edited.UpdateDetails(fmt.Sprintf("Writer %d", i), phone, "44 Residency Road", order.InTransit); updErr != nil {
				return
			}
			message, msgErr := order.NewMessage("Your order is out for delivery.", time.Now())
			if msgErr != nil {
				return
			}
			if appErr := edited.AppendMessage(message); appErr != nil {
				return
			}
			if updErr := repo.Update(ctx, edited); updErr != nil {
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < 200; i++ {
				all, getErr := repo.GetAll(ctx)
				if getErr != nil {
					return
				}
				for _, got := range all {
					_ = got.CustomerName()
					_ = got.CustomerPhone().String()
					_ = got.Address()
					_ = got.Status()
					_ = got.Messages()
				}
			}
		}()
	}

	close(start)
	wg.Wait()

	final, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, final.Status())
}

func TestOrderRepository_Exists(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewOrderRepository()
	o := newOrder(t, "OD10001", "Jane Doe")
	require.NoError(t, repo.Add(ctx, o))

	exists, err := repo.Exists(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := kernel.NewOrderID("OD99999")
	require.NoError(t, err)
	exists, err = repo.Exists(ctx, missing)
	require.NoError(t, err)
	assert.False(t, exists)
}
