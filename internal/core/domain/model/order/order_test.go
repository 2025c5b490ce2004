package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	id, err := kernel.NewOrderID("o1")
	require.NoError(t, err)
	customer, err := kernel.NewAccountID("alice")
	require.NoError(t, err)

	o, err := order.NewOrder(id, customer, "books", 10, kernel.NewMoney(100), time.Unix(1700000000, 0))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with creation defaults", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "o1", o.ID().String())
		assert.Equal(t, "alice", o.CustomerID().String())
		assert.Equal(t, "books", o.Description())
		assert.Equal(t, uint32(10), o.WeightInGrams())
		assert.Equal(t, "100", o.Price().String())
		assert.Equal(t, order.PaymentTypePrepaid, o.PaymentType())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.FeedbackNone, o.Feedback())
		assert.Empty(t, o.FeedbackComment())
	})

	t.Run("pickup and delivery timestamps are both the creation time", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, time.Unix(1700000000, 0), o.PickupTime())
		assert.Equal(t, o.PickupTime(), o.DeliveryTime())
	})

	t.Run("should reject an unconstructed order id", func(t *testing.T) {
		customer, err := kernel.NewAccountID("alice")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.OrderID{}, customer, "books", 10, kernel.NewMoney(100), time.Now())

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		id, err := kernel.NewOrderID("o1")
		require.NoError(t, err)
		customer, err := kernel.NewAccountID("alice")
		require.NoError(t, err)

		_, err = order.NewOrder(id, customer, "books", 10, kernel.Money{}, time.Now())

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the happy path to Delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.InProgress))
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should cancel from Confirmed and InProgress", func(t *testing.T) {
		confirmed := newTestOrder(t)
		require.NoError(t, confirmed.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, confirmed.Status())

		inProgress := newTestOrder(t)
		require.NoError(t, inProgress.ChangeStatus(order.InProgress))
		require.NoError(t, inProgress.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, inProgress.Status())
	})

	t.Run("should leave status unchanged on a rejected edge", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Delivered)

		require.ErrorIs(t, err, order.ErrOrderMustHaveInProgressStatus)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("a cancelled order cannot be delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.InProgress))
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Delivered)

		require.ErrorIs(t, err, order.ErrOrderMustHaveInProgressStatus)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("delivery does not refresh the delivery timestamp", func(t *testing.T) {
		o := newTestOrder(t)
		created := o.DeliveryTime()

		require.NoError(t, o.ChangeStatus(order.InProgress))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, created, o.DeliveryTime())
	})
}

func TestOrder_LeaveFeedback(t *testing.T) {
	t.Run("should attach feedback to a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.InProgress))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.LeaveFeedback(order.FeedbackExcellent, "great")

		require.NoError(t, err)
		assert.Equal(t, order.FeedbackExcellent, o.Feedback())
		assert.Equal(t, "great", o.FeedbackComment())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject feedback on a non-delivered order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.LeaveFeedback(order.FeedbackExcellent, "great")

		require.ErrorIs(t, err, order.ErrOrderMustHaveDeliveredStatus)
		assert.Equal(t, "Order must have Delivered status.", err.Error())
		assert.Equal(t, order.FeedbackNone, o.Feedback())
	})

	t.Run("should reject an invalid feedback category", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.InProgress))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.LeaveFeedback(order.FeedbackUnknown, "")

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		id, err := kernel.NewOrderID("o2")
		require.NoError(t, err)
		customer, err := kernel.NewAccountID("bob")
		require.NoError(t, err)
		pickup := time.Unix(1700000000, 0)

		o, err := order.RestoreOrder(
			id, customer, "vinyl", 250, kernel.NewMoney(500),
			order.PaymentTypePrepaid, order.Delivered,
			order.FeedbackGood, "arrived intact", pickup, pickup,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.FeedbackGood, o.Feedback())
		assert.Equal(t, "arrived intact", o.FeedbackComment())
	})

	t.Run("should reject an invalid persisted status", func(t *testing.T) {
		id, err := kernel.NewOrderID("o2")
		require.NoError(t, err)
		customer, err := kernel.NewAccountID("bob")
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			id, customer, "vinyl", 250, kernel.NewMoney(500),
			order.PaymentTypePrepaid, order.Unknown,
			order.FeedbackNone, "", time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by id", func(t *testing.T) {
		a := newTestOrder(t)
		b := newTestOrder(t)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
