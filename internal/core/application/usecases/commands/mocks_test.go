package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/transfer"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedClock pins handler timestamps so assertions are deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testTime = time.Unix(1700000000, 0)

func testClock() fixedClock { return fixedClock{now: testTime} }

func testLedger(t *testing.T, bytePrice uint64) services.DepositLedger {
	t.Helper()
	ledger, err := services.NewDepositLedger(kernel.NewMoney(bytePrice))
	require.NoError(t, err)
	return ledger
}

func accountID(t *testing.T, value string) kernel.AccountID {
	t.Helper()
	id, err := kernel.NewAccountID(value)
	require.NoError(t, err)
	return id
}

func orderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

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

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderIndexRepository struct{ mock.Mock }

func (m *MockOrderIndexRepository) Append(ctx context.Context, customerID kernel.AccountID, id kernel.OrderID) error {
	args := m.Called(ctx, customerID, id)
	return args.Error(0)
}

func (m *MockOrderIndexRepository) GetByCustomer(ctx context.Context, customerID kernel.AccountID) ([]kernel.OrderID, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.OrderID), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *account.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *account.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.AccountID) (*account.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id kernel.AccountID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAdminRepository struct{ mock.Mock }

func (m *MockAdminRepository) Add(ctx context.Context, a *account.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminRepository) Get(ctx context.Context, id kernel.AccountID) (*account.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Admin), args.Error(1)
}

func (m *MockAdminRepository) Exists(ctx context.Context, id kernel.AccountID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) Remove(ctx context.Context, id kernel.AccountID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTransferOutbox struct{ mock.Mock }

func (m *MockTransferOutbox) Add(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferOutbox) Update(ctx context.Context, t *transfer.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferOutbox) GetAllPending(ctx context.Context) ([]*transfer.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.Transfer), args.Error(1)
}

type MockStorageMeter struct{ mock.Mock }

func (m *MockStorageMeter) UsedBytes(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Transfer(ctx context.Context, beneficiary kernel.AccountID, amount kernel.Money) error {
	args := m.Called(ctx, beneficiary, amount)
	return args.Error(0)
}

// txMock embeds the shared transaction lifecycle expectations.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCreateOrderUoW struct{ txMock }

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) OrderIndexRepository() ports.OrderIndexRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderIndexRepository)
}

func (m *MockCreateOrderUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockCreateOrderUoW) TransferOutbox() ports.TransferOutbox {
	args := m.Called()
	return args.Get(0).(ports.TransferOutbox)
}

func (m *MockCreateOrderUoW) StorageMeter() ports.StorageMeter {
	args := m.Called()
	return args.Get(0).(ports.StorageMeter)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockUpdateOrderStatusUoW struct{ txMock }

func (m *MockUpdateOrderStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUpdateOrderStatusUoW) AdminRepository() ports.AdminRepository {
	args := m.Called()
	return args.Get(0).(ports.AdminRepository)
}

func (m *MockUpdateOrderStatusUoW) TransferOutbox() ports.TransferOutbox {
	args := m.Called()
	return args.Get(0).(ports.TransferOutbox)
}

func (m *MockUpdateOrderStatusUoW) StorageMeter() ports.StorageMeter {
	args := m.Called()
	return args.Get(0).(ports.StorageMeter)
}

type MockUpdateOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockUpdateOrderStatusUoWFactory) Create() commands.UpdateOrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateOrderStatusUoW)
}

type MockSubmitFeedbackUoW struct{ txMock }

func (m *MockSubmitFeedbackUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSubmitFeedbackUoW) TransferOutbox() ports.TransferOutbox {
	args := m.Called()
	return args.Get(0).(ports.TransferOutbox)
}

func (m *MockSubmitFeedbackUoW) StorageMeter() ports.StorageMeter {
	args := m.Called()
	return args.Get(0).(ports.StorageMeter)
}

type MockSubmitFeedbackUoWFactory struct{ mock.Mock }

func (m *MockSubmitFeedbackUoWFactory) Create() commands.SubmitFeedbackUoW {
	args := m.Called()
	return args.Get(0).(commands.SubmitFeedbackUoW)
}

type MockCustomerUoW struct{ txMock }

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockCustomerUoW) TransferOutbox() ports.TransferOutbox {
	args := m.Called()
	return args.Get(0).(ports.TransferOutbox)
}

func (m *MockCustomerUoW) StorageMeter() ports.StorageMeter {
	args := m.Called()
	return args.Get(0).(ports.StorageMeter)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockAdminUoW struct{ txMock }

func (m *MockAdminUoW) AdminRepository() ports.AdminRepository {
	args := m.Called()
	return args.Get(0).(ports.AdminRepository)
}

type MockAdminUoWFactory struct{ mock.Mock }

func (m *MockAdminUoWFactory) Create() commands.AdminUoW {
	args := m.Called()
	return args.Get(0).(commands.AdminUoW)
}

type MockDispatchTransfersUoW struct{ txMock }

func (m *MockDispatchTransfersUoW) TransferOutbox() ports.TransferOutbox {
	args := m.Called()
	return args.Get(0).(ports.TransferOutbox)
}

type MockDispatchTransfersUoWFactory struct{ mock.Mock }

func (m *MockDispatchTransfersUoWFactory) Create() commands.DispatchTransfersUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchTransfersUoW)
}
