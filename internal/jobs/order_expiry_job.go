package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule is used when no schedule is configured.
const DefaultExpirySchedule = "@every 30s"

// PendingExpirer is implemented by registry.OrderRegistry.
type PendingExpirer interface {
	ExpirePending(ctx context.Context) (int, error)
}

// OrderExpiryJob periodically drops pending orders that outlived the admission timeout.
type OrderExpiryJob struct {
	expirer  PendingExpirer
	schedule cron.Schedule
	spec     string
	cron     *cron.Cron
	timeout  time.Duration
	logger   *slog.Logger
}

// NewOrderExpiryJob parses spec up front, so a bad schedule fails at wiring time.
func NewOrderExpiryJob(expirer PendingExpirer, spec string, logger *slog.Logger) (*OrderExpiryJob, error) {
	if spec == "" {
		spec = DefaultExpirySchedule
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}

	return &OrderExpiryJob{
		expirer:  expirer,
		schedule: schedule,
		spec:     spec,
		cron:     cron.New(),
		timeout:  10 * time.Second,
		logger:   logger.With("component", "order_expiry_job"),
	}, nil
}

func (j *OrderExpiryJob) Name() string {
	return "order expiry job"
}

func (j *OrderExpiryJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RunOnce(ctx)
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started", "schedule", j.spec)
	return nil
}

// RunOnce performs a single sweep and reports how many orders it dropped.
func (j *OrderExpiryJob) RunOnce(ctx context.Context) int {
	dropped, err := j.expirer.ExpirePending(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry sweep failed", "dropped", dropped, "error", err)
		return dropped
	}
	if dropped > 0 {
		j.logger.InfoContext(ctx, "Expired orders dropped", "dropped", dropped)
	}
	return dropped
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *OrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
