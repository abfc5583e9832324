package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying id for event log entries.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	return getCorrelationID(ctx)
}

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogRatesRefreshed(ctx context.Context, base string, rateCount int, durationMs int64) {
	el.logger.InfoContext(ctx, "exchange rates refreshed",
		slog.String("event_type", "rates_refreshed"),
		slog.String("base_currency", base),
		slog.Int("rate_count", rateCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogRatesStale(ctx context.Context, base string, age time.Duration, errorMsg string) {
	el.logger.WarnContext(ctx, "serving stale exchange rates",
		slog.String("event_type", "rates_stale"),
		slog.String("base_currency", base),
		slog.Duration("age", age),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogRateFetchFailed(ctx context.Context, base string, errorMsg string) {
	el.logger.WarnContext(ctx, "exchange rate fetch failed",
		slog.String("event_type", "rate_fetch_failed"),
		slog.String("base_currency", base),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogThresholdCrossed(ctx context.Context, budgetID uuid.UUID, threshold int, usagePercent string) {
	el.logger.InfoContext(ctx, "budget threshold crossed",
		slog.String("event_type", "threshold_crossed"),
		slog.String("budget_id", budgetID.String()),
		slog.Int("threshold", threshold),
		slog.String("usage_percent", usagePercent),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogThresholdAlreadyTriggered(ctx context.Context, budgetID uuid.UUID, threshold int) {
	el.logger.InfoContext(ctx, "budget threshold already triggered by another writer",
		slog.String("event_type", "threshold_already_triggered"),
		slog.String("budget_id", budgetID.String()),
		slog.Int("threshold", threshold),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogAlertNotificationFailed(ctx context.Context, budgetID uuid.UUID, threshold int, errorMsg string) {
	el.logger.WarnContext(ctx, "budget alert notification failed",
		slog.String("event_type", "alert_notification_failed"),
		slog.String("budget_id", budgetID.String()),
		slog.Int("threshold", threshold),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogRecordStored(ctx context.Context, recordID uuid.UUID, kind string, converted bool) {
	el.logger.InfoContext(ctx, "monetary record stored",
		slog.String("event_type", "record_stored"),
		slog.String("record_id", recordID.String()),
		slog.String("kind", kind),
		slog.Bool("converted", converted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogBaseAmountBackfilled(ctx context.Context, recordID uuid.UUID, baseAmount string) {
	el.logger.InfoContext(ctx, "base amount backfilled",
		slog.String("event_type", "base_amount_backfilled"),
		slog.String("record_id", recordID.String()),
		slog.String("base_amount", baseAmount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
