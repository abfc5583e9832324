package services

import (
	"context"
	"log/slog"

	"finance-analytics/internal/models"
)

// LogAlertNotifier writes alerts to the log. It is used when no message
// broker is configured.
type LogAlertNotifier struct {
	logger *slog.Logger
}

func NewLogAlertNotifier(logger *slog.Logger) *LogAlertNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogAlertNotifier{logger: logger}
}

func (n *LogAlertNotifier) NotifyBudgetAlert(ctx context.Context, alert *models.BudgetAlert) error {
	n.logger.InfoContext(ctx, "budget alert",
		"budget_id", alert.BudgetID,
		"owner_id", alert.OwnerID,
		"category", alert.Category,
		"threshold", alert.Threshold,
		"usage_percent", alert.UsagePercent.String())
	return nil
}
