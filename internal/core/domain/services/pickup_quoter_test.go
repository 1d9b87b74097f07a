package services_test

import (
	"regexp"
	"testing"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID("OD10001")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+91 9000000000")
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Jane Doe", phone, "12 MG Road, Bengaluru", order.Pending, time.Now())
	require.NoError(t, err)
	return o
}

func TestPickupQuoter_Quote(t *testing.T) {
	t.Run("always_produces_a_valid_quote", func(t *testing.T) {
		quoter := services.NewPickupQuoter()
		o := newTestOrder(t)
		pricePattern := regexp.MustCompile(`^\d+\.\d{2}$`)

		for range 50 {
			quote, err := quoter.Quote(o)

			require.NoError(t, err)
			assert.Regexp(t, pricePattern, quote.Price())
			assert.GreaterOrEqual(t, quote.EtaMinutes(), 0)
		}
	})

	t.Run("rejects_unconstructed_order", func(t *testing.T) {
		quoter := services.NewPickupQuoter()

		_, err := quoter.Quote(&order.Order{})

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
