package kernel_test

import (
	"regexp"
	"testing"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("accepts_operator_supplied_id", func(t *testing.T) {
		id, err := kernel.NewOrderID("CUSTOM-42")

		require.NoError(t, err)
		assert.Equal(t, "CUSTOM-42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("trims_whitespace", func(t *testing.T) {
		id, err := kernel.NewOrderID("  OD10001  ")

		require.NoError(t, err)
		assert.Equal(t, "OD10001", id.String())
	})

	t.Run("rejects_empty_id", func(t *testing.T) {
		_, err := kernel.NewOrderID("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewRandomOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^OD\d{5}$`)

	for range 100 {
		id := kernel.NewRandomOrderID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, pattern, id.String())
		assert.True(t, id.IsGenerated())
	}
}

func TestOrderID_IsGenerated(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		generated bool
	}{
		{"generated_format", "OD10001", true},
		{"too_few_digits", "OD1001", false},
		{"too_many_digits", "OD100001", false},
		{"operator_supplied", "CUSTOM-42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewOrderID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.generated, id.IsGenerated())
		})
	}
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.NewOrderID("OD10001")
	require.NoError(t, err)
	b, err := kernel.NewOrderID("OD10001")
	require.NoError(t, err)
	c, err := kernel.NewOrderID("OD10002")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}
