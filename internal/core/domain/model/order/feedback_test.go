package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.FeedbackUnknown))
		assert.Equal(t, 1, int(order.FeedbackNone))
		assert.Equal(t, 2, int(order.FeedbackExcellent))
		assert.Equal(t, 3, int(order.FeedbackGood))
		assert.Equal(t, 4, int(order.FeedbackAverage))
		assert.Equal(t, 5, int(order.FeedbackBad))
		assert.Equal(t, 6, int(order.FeedbackWorst))
	})
}

func TestFeedback_Validate(t *testing.T) {
	t.Run("should validate valid feedback categories", func(t *testing.T) {
		valid := []order.Feedback{
			order.FeedbackNone,
			order.FeedbackExcellent,
			order.FeedbackGood,
			order.FeedbackAverage,
			order.FeedbackBad,
			order.FeedbackWorst,
		}

		for _, feedback := range valid {
			t.Run(fmt.Sprintf("should validate %s feedback", feedback.String()), func(t *testing.T) {
				require.NoError(t, feedback.Validate())
			})
		}
	})

	t.Run("should reject invalid feedback values", func(t *testing.T) {
		invalid := []order.Feedback{
			order.FeedbackUnknown,
			order.Feedback(7),
			order.Feedback(-1),
		}

		for _, feedback := range invalid {
			err := feedback.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "feedback is invalid")
		}
	})
}

func TestFeedback_String(t *testing.T) {
	testCases := []struct {
		feedback order.Feedback
		expected string
	}{
		{order.FeedbackNone, "None"},
		{order.FeedbackExcellent, "Excellent"},
		{order.FeedbackWorst, "Worst"},
		{order.Feedback(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.feedback.String())
	}
}

func TestPaymentType_Validate(t *testing.T) {
	t.Run("should validate prepaid", func(t *testing.T) {
		require.NoError(t, order.PaymentTypePrepaid.Validate())
		assert.Equal(t, "Prepaid", order.PaymentTypePrepaid.String())
	})

	t.Run("should reject anything else", func(t *testing.T) {
		err := order.PaymentTypeUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Equal(t, "Unknown", order.PaymentTypeUnknown.String())
	})
}
