package messaging_test

import (
	"testing"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/messaging"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = "Your order is out for delivery."

func orderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func TestWorkflow_Begin(t *testing.T) {
	t.Run("marks_template_as_sending", func(t *testing.T) {
		var w messaging.Workflow

		token, err := w.Begin(orderID(t, "OD10001"), template)

		require.NoError(t, err)
		assert.Positive(t, token)
		assert.True(t, w.Sending())
		assert.Equal(t, template, w.Template())
		assert.Equal(t, "OD10001", w.OrderID().String())
	})

	t.Run("rejects_concurrent_send", func(t *testing.T) {
		var w messaging.Workflow
		_, err := w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)

		_, err = w.Begin(orderID(t, "OD10001"), "Your order has been delivered. Thank you!")

		require.ErrorIs(t, err, messaging.ErrSendAlreadyInFlight)
		assert.Equal(t, template, w.Template())
	})

	t.Run("rejects_empty_template", func(t *testing.T) {
		var w messaging.Workflow

		_, err := w.Begin(orderID(t, "OD10001"), "   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, w.Sending())
	})

	t.Run("rejects_invalid_order_id", func(t *testing.T) {
		var w messaging.Workflow

		_, err := w.Begin(kernel.OrderID{}, template)

		require.Error(t, err)
		assert.False(t, w.Sending())
	})
}

func TestWorkflow_Resolve(t *testing.T) {
	t.Run("clears_sending_marker", func(t *testing.T) {
		var w messaging.Workflow
		token, err := w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)

		require.NoError(t, w.Resolve(token))

		assert.False(t, w.Sending())
		assert.Empty(t, w.Template())
	})

	t.Run("rejects_stale_token", func(t *testing.T) {
		var w messaging.Workflow
		token, err := w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)
		require.NoError(t, w.Resolve(token))

		_, err = w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)

		require.ErrorIs(t, w.Resolve(token), messaging.ErrStaleSendAttempt)
		assert.True(t, w.Sending())
	})

	t.Run("rejects_resolution_when_idle", func(t *testing.T) {
		var w messaging.Workflow

		require.ErrorIs(t, w.Resolve(1), messaging.ErrStaleSendAttempt)
	})

	t.Run("send_can_restart_after_resolution", func(t *testing.T) {
		var w messaging.Workflow
		first, err := w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)
		require.NoError(t, w.Resolve(first))

		second, err := w.Begin(orderID(t, "OD10001"), template)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		require.NoError(t, w.Resolve(second))
	})
}
