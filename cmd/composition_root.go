package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"orders/api"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/memory"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderreader"
	"orders/internal/adapters/out/seed"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	publisher  eventPublisher
	uowFactory ports.UnitOfWorkFactory
	reader     ports.OrderReader
}

// NewCompositionRoot wires the postgres backend when gormDB is non-nil and
// the in-memory backend, seeded from SEED_FILE, otherwise.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var publisher eventPublisher = kafka.NopPublisher{}
	if configs.KafkaHost != "" {
		publisher = kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
	}

	root := &CompositionRoot{
		configs:   configs,
		logger:    logger,
		registry:  registry,
		publisher: publisher,
	}

	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
		root.reader = orderreader.NewGormOrderReader(gormDB)
		return root, nil
	}

	data, err := seed.Load(configs.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	store := memory.NewStore(data)
	root.uowFactory = memory.NewUnitOfWorkFactory(store, publisher, logger)
	root.reader = memory.NewReader(store)
	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetMonthlyProfitQueryHandler() queries.GetMonthlyProfitQueryHandler {
	return queries.NewGetMonthlyProfitQueryHandler(c.reader, nil)
}

func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetOrderDetailQueryHandler(),
		c.CreateGetMonthlyProfitQueryHandler(),
		c.logger,
	)
	return httpadapter.NewEcho(ctx, server, httpadapter.RouterConfig{
		Logger:   c.logger,
		Contract: api.OpenAPI,
		Metrics:  metrics.NewServerMetrics(c.registry),
		Gatherer: c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetMonthlyProfitQueryHandler(),
		c.configs.ProfitReportSchedule,
		metrics.NewReportMetrics(c.registry),
		c.logger,
	)
}

// Close releases the event publisher.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}
