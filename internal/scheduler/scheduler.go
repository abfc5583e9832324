package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-analytics/internal/config"
	"finance-analytics/internal/services"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the periodic maintenance jobs: refreshing exchange rates
// and converting records that were stored while rates were unavailable.
type Scheduler struct {
	cron         *cron.Cron
	currency     services.CurrencyServiceInterface
	transactions services.TransactionServiceInterface
	cfg          config.SchedulerConfig
	ctx          context.Context
}

// NewScheduler creates a scheduler. Jobs run with ctx as parent and are
// skipped while a previous run of the same job is still in progress.
func NewScheduler(
	ctx context.Context,
	cfg config.SchedulerConfig,
	currency services.CurrencyServiceInterface,
	transactions services.TransactionServiceInterface,
) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		currency:     currency,
		transactions: transactions,
		cfg:          cfg,
		ctx:          ctx,
	}
}

// RegisterAll registers the rate refresh and backfill jobs
func (s *Scheduler) RegisterAll() error {
	if _, err := s.cron.AddFunc(s.cfg.RateRefreshCron, s.RefreshRates); err != nil {
		return fmt.Errorf("register rate refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.BackfillCron, s.BackfillBaseAmounts); err != nil {
		return fmt.Errorf("register backfill: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "entries", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("Scheduler stopped")
	case <-ctx.Done():
		slog.Warn("Scheduler stop timed out with jobs still running")
	}
}

// RefreshRates forces a fetch of the exchange rate table
func (s *Scheduler) RefreshRates() {
	ctx, cancel := s.jobContext("rate_refresh")
	defer cancel()

	if err := s.currency.Refresh(ctx); err != nil {
		slog.WarnContext(ctx, "Scheduled rate refresh failed", "error", err)
	}
}

// BackfillBaseAmounts converts one batch of unconverted records
func (s *Scheduler) BackfillBaseAmounts() {
	ctx, cancel := s.jobContext("backfill")
	defer cancel()

	converted, err := s.transactions.BackfillBaseAmounts(ctx, s.cfg.BackfillBatchSize)
	if err != nil {
		slog.WarnContext(ctx, "Scheduled backfill failed", "converted", converted, "error", err)
		return
	}
	if converted > 0 {
		slog.InfoContext(ctx, "Scheduled backfill completed", "converted", converted)
	}
}

func (s *Scheduler) jobContext(job string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	return services.WithCorrelationID(ctx, job+"-"+uuid.NewString()), cancel
}
