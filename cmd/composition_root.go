package cmd

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, gateway ports.PaymentGateway, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertAddressCommandHandler() commands.UpsertAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateHandlePaymentCallbackQueryHandler() queries.HandlePaymentCallbackQueryHandler {
	finder := FuncPaymentFinder(func(ctx context.Context, id payment.MerchantPaymentID) (*payment.Payment, error) {
		return c.uowFactory.Create().PaymentRepository().GetByMerchantPaymentID(ctx, id)
	})
	return queries.NewHandlePaymentCallbackQueryHandler(finder, c.cfg.Checkout.ResultPathTemplate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.gateway)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressQueryHandler() queries.GetAddressQueryHandler {
	return queries.NewGetAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStalePaymentsQueryHandler() queries.ListStalePaymentsQueryHandler {
	return queries.NewListStalePaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateShipmentStatus := c.CreateUpdateShipmentStatusCommandHandler()
	upsertAddress := c.CreateUpsertAddressCommandHandler()

	return httpin.NewServer(
		&createOrder,
		&updateShipmentStatus,
		&upsertAddress,
		c.CreateHandlePaymentCallbackQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetAddressQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthConfig() httpin.AuthConfig {
	return httpin.AuthConfig{
		Secret:     c.cfg.Auth.JWTSecret,
		Issuer:     c.cfg.Auth.Issuer,
		AdminRole:  c.cfg.Auth.AdminRole,
		CookieName: c.cfg.Auth.CookieName,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Config{
			OrphanReportEnabled:  c.cfg.Jobs.OrphanReportEnabled,
			OrphanReportSchedule: c.cfg.Jobs.OrphanReportSchedule,
			OrphanReportMinAge:   c.cfg.Jobs.OrphanReportMinAge,
			OrphanReportBatch:    c.cfg.Jobs.OrphanReportBatch,
		},
		c.CreateListStalePaymentsQueryHandler(),
		c.gateway,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncPaymentFinder func(ctx context.Context, id payment.MerchantPaymentID) (*payment.Payment, error)

func (f FuncPaymentFinder) GetByMerchantPaymentID(ctx context.Context, id payment.MerchantPaymentID) (*payment.Payment, error) {
	return f(ctx, id)
}
