package cmd

import (
	"log/slog"
	"time"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/eventlog"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"
	"workorders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	now        func() time.Time
	workflow   services.OrderWorkflow
	uowFactory ports.UnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		now:        time.Now,
		workflow:   services.NewOrderWorkflow(time.Now),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, eventlog.NewPublisher(logger)),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.workflow, c.config.ConflictRetries)
}

func (c *CompositionRoot) CreateUpdateOrderProgressCommandHandler() commands.UpdateOrderProgressCommandHandler {
	return commands.NewUpdateOrderProgressCommandHandler(c.orderUoWFactory(), c.config.ConflictRetries)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.workflow)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		UpdateOrderProgress: c.CreateUpdateOrderProgressCommandHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrderHistory:     c.CreateGetOrderHistoryQueryHandler(),
		GetDashboardStats:   c.CreateGetDashboardStatsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueOrdersQueryHandler(), c.config.OverdueScanSchedule, c.now, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
