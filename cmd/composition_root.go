package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/operationrepo"
	"fulfillment/internal/adapters/out/postgres/sessionstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *commands.SessionRegistry
	ledger     *inventoryrepo.GormInventoryLedger
	matcher    services.ScanMatcher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	store := sessionstore.NewGormSessionStore(gormDB, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   commands.NewSessionRegistry(store, logger),
		ledger:     inventoryrepo.NewGormInventoryLedger(gormDB),
		matcher:    services.NewScanMatcher(),
	}
}

// SessionRegistry exposes the single session slot shared by commands,
// queries and jobs.
func (c *CompositionRoot) SessionRegistry() *commands.SessionRegistry {
	return c.registry
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	return commands.NewAssignCarrierCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreatePrintLabelCommandHandler() commands.PrintLabelCommandHandler {
	return commands.NewPrintLabelCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.orderUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	return commands.NewRecordScanCommandHandler(c.registry, c.matcher)
}

func (c *CompositionRoot) CreateUpdateSessionInfoCommandHandler() commands.UpdateSessionInfoCommandHandler {
	return commands.NewUpdateSessionInfoCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateSavePreparationCommandHandler() commands.SavePreparationCommandHandler {
	return commands.NewSavePreparationCommandHandler(c.fulfillmentUoWFactory(), c.registry)
}

func (c *CompositionRoot) CreateDiscardPreparationCommandHandler() commands.DiscardPreparationCommandHandler {
	return commands.NewDiscardPreparationCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.fulfillmentUoWFactory(), c.ledger)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.fulfillmentUoWFactory(), c.ledger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateRetryOrderCommandHandler() commands.RetryOrderCommandHandler {
	return commands.NewRetryOrderCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperationLogQueryHandler() queries.GetOperationLogQueryHandler {
	return queries.NewGetOperationLogQueryHandler(operationrepo.NewGormOperationLogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetActiveSessionQueryHandler() queries.GetActiveSessionQueryHandler {
	return queries.NewGetActiveSessionQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetScanFailureStatsQueryHandler() queries.GetScanFailureStatsQueryHandler {
	return queries.NewGetScanFailureStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
