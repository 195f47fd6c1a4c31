package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	httpin "campusfood/internal/adapters/in/http"
	"campusfood/internal/adapters/out/memory"
	"campusfood/internal/adapters/out/metrics"
	"campusfood/internal/adapters/out/postgres/accountrepo"
	"campusfood/internal/adapters/out/postgres/orderrepo"
	"campusfood/internal/adapters/out/settlement"
	"campusfood/internal/core/application/registry"
	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/account"
	"campusfood/internal/core/domain/model/payment"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/core/ports"
	"campusfood/internal/jobs"
	"campusfood/internal/pkg/clock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

var ErrDatabaseIsRequired = errors.New("postgres storage needs an open database")

type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	registry *registry.OrderRegistry
	gatherer prometheus.Gatherer
}

// NewCompositionRoot wires the service for cfg.Storage and seeds the demo accounts.
// gormDB is only used, and then required, for postgres storage.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	lifecycle := metrics.NewLifecycleMetrics(reg)
	systemClock := clock.System{}

	var (
		pool     ports.OrderPool
		accounts ports.AccountDirectory
		add      func(context.Context, *account.Account) error
	)
	switch cfg.Storage {
	case StoragePostgres:
		if gormDB == nil {
			return nil, ErrDatabaseIsRequired
		}
		dir := accountrepo.NewGormAccountDirectory(gormDB)
		pool, accounts, add = orderrepo.NewGormOrderPool(gormDB, systemClock), dir, dir.Add
	default:
		dir := memory.NewAccountDirectory()
		pool, accounts = memory.NewOrderPool(), dir
		add = func(_ context.Context, a *account.Account) error { return dir.Add(a) }
	}

	if err := SeedAccounts(ctx, add, logger); err != nil {
		return nil, err
	}

	network, err := settlement.NewMockedNetwork(accounts, cfg.SettlementSuccessRate, logger,
		settlement.WithClock(systemClock))
	if err != nil {
		return nil, err
	}
	selector, err := services.NewProcessorSelector(
		lifecycle.Instrument(payment.External.String(), network),
		lifecycle.Instrument(payment.Internal.String(), services.NewBalanceGateway(accounts, logger)),
	)
	if err != nil {
		return nil, err
	}

	orders, err := registry.NewOrderRegistry(registry.Deps{
		Pool:          pool,
		Accounts:      accounts,
		Restaurants:   memory.NewRestaurantLedger(),
		Selector:      selector,
		Pricing:       services.TotalOf,
		Clock:         systemClock,
		Logger:        logger,
		Cancellations: lifecycle,
	})
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		registry: orders,
		gatherer: reg,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	return commands.NewRegisterOrderCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetRegisteredOrdersQueryHandler() queries.GetRegisteredOrdersQueryHandler {
	return queries.NewGetRegisteredOrdersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateInitiatePaymentCommandHandler(),
		c.CreateRegisterOrderCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetRegisteredOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	expiry, err := jobs.NewOrderExpiryJob(c.registry, c.cfg.ExpirySweepSchedule, c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(expiry), nil
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return metrics.Handler(c.gatherer)
}
