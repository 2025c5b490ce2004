package kernel_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create order id from a non-empty string", func(t *testing.T) {
		id, err := kernel.NewOrderID("o1")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "o1", id.String())
	})

	t.Run("should reject an empty string", func(t *testing.T) {
		_, err := kernel.NewOrderID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject identifiers above the limit", func(t *testing.T) {
		_, err := kernel.NewOrderID(strings.Repeat("x", 129))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		o1, err := kernel.NewOrderID("o1")
		require.NoError(t, err)
		o1Again, err := kernel.NewOrderID("o1")
		require.NoError(t, err)
		o2, err := kernel.NewOrderID("o2")
		require.NoError(t, err)

		assert.True(t, o1.IsEqual(o1Again))
		assert.False(t, o1.IsEqual(o2))
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}
