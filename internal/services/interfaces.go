package services

import (
	"context"
	"time"

	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodRangeServiceInterface builds UTC query windows relative to the current clock
type PeriodRangeServiceInterface interface {
	// BuildRange returns the window covering the last count periods, including the current one
	BuildRange(granularity models.Granularity, count int) (models.PeriodWindow, error)

	// BuildMonthRange returns the window of one explicit calendar month
	BuildMonthRange(month, year int) (models.PeriodWindow, error)
}

// RateProviderInterface fetches a complete rate table from an external source
type RateProviderInterface interface {
	FetchRates(ctx context.Context, base string) (*models.ExchangeRateSnapshot, error)
}

// CurrencyServiceInterface converts amounts between the base currency and other currencies
type CurrencyServiceInterface interface {
	BaseCurrency() string
	ToBase(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error)
	FromBase(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*models.ConversionResult, error)
	Snapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error)
	Warm(ctx context.Context) error
	Refresh(ctx context.Context) error
	Close()
}

// AnalyticsServiceInterface serves aggregated views over an owner's records
type AnalyticsServiceInterface interface {
	GetTrend(ctx context.Context, ownerID uuid.UUID, granularity models.Granularity, count int) (*models.Trend, error)
	GetMonthlySummary(ctx context.Context, ownerID uuid.UUID, month, year int) (*models.PeriodSummary, error)
	GetCategoryBreakdown(ctx context.Context, ownerID uuid.UUID, kind string, month, year, limit int) (*models.CategoryBreakdown, error)
}

// BudgetAlertServiceInterface evaluates spend against a budget and fires threshold alerts
type BudgetAlertServiceInterface interface {
	Evaluate(ctx context.Context, ownerID uuid.UUID, category string, month, year int) (*models.BudgetEvaluation, error)
}

type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, ownerID uuid.UUID, category string, month, year int, limit decimal.Decimal, currency string, thresholds []int) (*models.Budget, error)
	GetBudget(ctx context.Context, ownerID, budgetID uuid.UUID) (*models.Budget, error)
	DeleteBudget(ctx context.Context, ownerID, budgetID uuid.UUID) error
}

type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, record *models.MonetaryRecord) (*models.RecordOutcome, error)
	// BackfillBaseAmounts converts records stored without a base amount and
	// returns how many were updated
	BackfillBaseAmounts(ctx context.Context, limit int) (int, error)
}

// AlertNotifierInterface delivers a reported budget alert to the owner
type AlertNotifierInterface interface {
	NotifyBudgetAlert(ctx context.Context, alert *models.BudgetAlert) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type EventLoggerInterface interface {
	LogRatesRefreshed(ctx context.Context, base string, rateCount int, durationMs int64)
	LogRatesStale(ctx context.Context, base string, age time.Duration, errorMsg string)
	LogRateFetchFailed(ctx context.Context, base string, errorMsg string)
	LogThresholdCrossed(ctx context.Context, budgetID uuid.UUID, threshold int, usagePercent string)
	LogThresholdAlreadyTriggered(ctx context.Context, budgetID uuid.UUID, threshold int)
	LogAlertNotificationFailed(ctx context.Context, budgetID uuid.UUID, threshold int, errorMsg string)
	LogRecordStored(ctx context.Context, recordID uuid.UUID, kind string, converted bool)
	LogBaseAmountBackfilled(ctx context.Context, recordID uuid.UUID, baseAmount string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
