package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/payment"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// systemClock reads the host wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	ledger     services.DepositLedger
	clock      ports.Clock
	gateway    ports.PaymentGateway
	operatorID kernel.AccountID
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	operatorID, err := kernel.NewAccountID(config.OperatorAccountID)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid operator account id: %w", err)
	}

	bytePrice, err := kernel.NewMoneyFromString(config.StorageBytePrice)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid storage byte price: %w", err)
	}

	ledger, err := services.NewDepositLedger(bytePrice)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create deposit ledger: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		ledger:     ledger,
		clock:      systemClock{},
		gateway:    payment.NewHostPaymentGateway(config.PayoutEndpoint, logger),
		operatorID: operatorID,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.ledger, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UpdateOrderStatusUoWFactory = FuncUpdateOrderStatusUoWFactory(func() commands.UpdateOrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.ledger, c.clock)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.SubmitFeedbackUoWFactory = FuncSubmitFeedbackUoWFactory(func() commands.SubmitFeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f, c.ledger, c.clock)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f, c.ledger, c.clock)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f, c.ledger, c.clock)
}

func (c *CompositionRoot) CreateCreateAdminCommandHandler() commands.CreateAdminCommandHandler {
	var f commands.AdminUoWFactory = FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAdminCommandHandler(f, c.operatorID, c.clock)
}

func (c *CompositionRoot) CreateRemoveAdminCommandHandler() commands.RemoveAdminCommandHandler {
	var f commands.AdminUoWFactory = FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAdminCommandHandler(f, c.operatorID)
}

func (c *CompositionRoot) CreateDispatchTransfersCommandHandler() commands.DispatchTransfersCommandHandler {
	var f commands.DispatchTransfersUoWFactory = FuncDispatchTransfersUoWFactory(func() commands.DispatchTransfersUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchTransfersCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderListQueryHandler() queries.GetOrderListQueryHandler {
	return queries.NewGetOrderListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerIDQueryHandler() queries.GetOrdersByCustomerIDQueryHandler {
	return queries.NewGetOrdersByCustomerIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByAccountIDQueryHandler() queries.GetCustomerByAccountIDQueryHandler {
	return queries.NewGetCustomerByAccountIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminByAccountIDQueryHandler() queries.GetAdminByAccountIDQueryHandler {
	return queries.NewGetAdminByAccountIDQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncUpdateOrderStatusUoWFactory func() commands.UpdateOrderStatusUoW

func (f FuncUpdateOrderStatusUoWFactory) Create() commands.UpdateOrderStatusUoW {
	return f()
}

type FuncSubmitFeedbackUoWFactory func() commands.SubmitFeedbackUoW

func (f FuncSubmitFeedbackUoWFactory) Create() commands.SubmitFeedbackUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncAdminUoWFactory func() commands.AdminUoW

func (f FuncAdminUoWFactory) Create() commands.AdminUoW {
	return f()
}

type FuncDispatchTransfersUoWFactory func() commands.DispatchTransfersUoW

func (f FuncDispatchTransfersUoWFactory) Create() commands.DispatchTransfersUoW {
	return f()
}
