package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitFeedbackCommand(t *testing.T) {
	caller := accountID(t, "alice")
	id := orderID(t, "order-1")

	cmd, err := commands.NewSubmitFeedbackCommand(caller, id, order.FeedbackExcellent, "fast and careful", kernel.NewMoney(5))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.FeedbackExcellent, cmd.Feedback())
	assert.Equal(t, "fast and careful", cmd.Comment())
	assert.True(t, cmd.Deposit().IsEqual(kernel.NewMoney(5)))
}

func TestNewSubmitFeedbackCommand_InvalidInputs(t *testing.T) {
	caller := accountID(t, "alice")
	id := orderID(t, "order-1")

	t.Run("empty caller", func(t *testing.T) {
		_, err := commands.NewSubmitFeedbackCommand(kernel.AccountID{}, id, order.FeedbackGood, "", kernel.NewMoney(5))
		require.Error(t, err)
	})

	t.Run("undefined feedback", func(t *testing.T) {
		_, err := commands.NewSubmitFeedbackCommand(caller, id, order.FeedbackUnknown, "", kernel.NewMoney(5))
		require.Error(t, err)
	})

	t.Run("unconstructed deposit", func(t *testing.T) {
		_, err := commands.NewSubmitFeedbackCommand(caller, id, order.FeedbackGood, "", kernel.Money{})
		require.Error(t, err)
	})
}

func TestSubmitFeedbackCommand_NotConstructed(t *testing.T) {
	cmd := commands.SubmitFeedbackCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitFeedbackCommandIsNotConstructed)
}
