package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/transfer"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	newProfile := testProfile()
	newProfile.Phone = "+15550199"
	// deposit 20, 8 bytes of profile growth at rate 1: 12 back to alice
	cmd, err := commands.NewUpdateCustomerCommand(accountID(t, "alice"), newProfile, kernel.NewMoney(20))
	require.NoError(t, err)

	existing, err := account.NewCustomer(cmd.Caller(), testProfile(), testTime)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	outbox := new(MockTransferOutbox)
	meter := new(MockStorageMeter)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cmd.Caller()).Return(existing, nil).Once(),
		uow.On("StorageMeter").Return(meter).Once(),
		meter.On("UsedBytes", mock.Anything).Return(uint64(240), nil).Once(),
		customerRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		meter.On("UsedBytes", mock.Anything).Return(uint64(248), nil).Once(),
		uow.On("TransferOutbox").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.MatchedBy(func(refund *transfer.Transfer) bool {
			return refund.Beneficiary().IsEqual(cmd.Caller()) &&
				refund.Amount().IsEqual(kernel.NewMoney(12))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory, testLedger(t, 1), testClock())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, newProfile, existing.Profile())
	customerRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_ShrinkingProfileRefundsWholeDeposit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCustomerCommand(accountID(t, "alice"), testProfile(), kernel.NewMoney(20))
	require.NoError(t, err)

	existing, err := account.NewCustomer(cmd.Caller(), testProfile(), testTime)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	outbox := new(MockTransferOutbox)
	meter := new(MockStorageMeter)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cmd.Caller()).Return(existing, nil).Once(),
		uow.On("StorageMeter").Return(meter).Once(),
		meter.On("UsedBytes", mock.Anything).Return(uint64(248), nil).Once(),
		customerRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		meter.On("UsedBytes", mock.Anything).Return(uint64(240), nil).Once(),
		uow.On("TransferOutbox").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, mock.MatchedBy(func(refund *transfer.Transfer) bool {
			return refund.Amount().IsEqual(kernel.NewMoney(20))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory, testLedger(t, 1), testClock())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	outbox.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_UnknownAccount(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCustomerCommand(accountID(t, "alice"), testProfile(), kernel.NewMoney(20))
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, cmd.Caller()).
			Return(nil, errs.NewObjectNotFoundError("customer", cmd.Caller().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory, testLedger(t, 1), testClock())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCustomerCommandHandler_Handle_DepositBelowFee(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCustomerCommand(accountID(t, "alice"), testProfile(), kernel.NewMoney(0))
	require.NoError(t, err)

	factory := new(MockCustomerUoWFactory)
	h := commands.NewUpdateCustomerCommandHandler(factory, testLedger(t, 1), testClock())

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientFunds)
	factory.AssertNotCalled(t, "Create")
}
