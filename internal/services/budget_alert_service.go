package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"

	"github.com/google/uuid"
)

type budgetAlertService struct {
	budgetRepo  repositories.BudgetRepositoryInterface
	recordRepo  repositories.RecordRepositoryInterface
	notifier    AlertNotifierInterface
	eventLogger EventLoggerInterface
	metrics     MetricsRecorderInterface
	now         func() time.Time
}

func NewBudgetAlertService(
	budgetRepo repositories.BudgetRepositoryInterface,
	recordRepo repositories.RecordRepositoryInterface,
	notifier AlertNotifierInterface,
	eventLogger EventLoggerInterface,
	metrics MetricsRecorderInterface,
	now func() time.Time,
) BudgetAlertServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &budgetAlertService{
		budgetRepo:  budgetRepo,
		recordRepo:  recordRepo,
		notifier:    notifier,
		eventLogger: eventLogger,
		metrics:     metrics,
		now:         now,
	}
}

// Evaluate compares month-to-date spend in a category against the owner's
// budget. Every threshold that spend has reached for the first time is
// persisted; only the highest of those that this call set is reported.
// A missing budget is not an error and yields an evaluation without alert.
func (s *budgetAlertService) Evaluate(ctx context.Context, ownerID uuid.UUID, category string, month, year int) (*models.BudgetEvaluation, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("budget.evaluation", time.Since(start))
	}()

	window, err := BuildMonthRange(month, year)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.Find(ctx, ownerID, category, month, year)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return &models.BudgetEvaluation{}, nil
		}
		return nil, fmt.Errorf("failed to load budget for %s %04d-%02d: %w", category, year, month, err)
	}

	evaluation := &models.BudgetEvaluation{
		BudgetID:  &budget.ID,
		LimitBase: budget.LimitBase,
	}

	if !budget.LimitBase.IsPositive() {
		slog.Warn("budget has no usable base limit, skipping evaluation",
			"budget_id", budget.ID,
			"limit_base", budget.LimitBase.String())
		return evaluation, nil
	}

	spent, err := s.recordRepo.SumBaseAmount(ctx, ownerID, category, models.RecordKindExpense, window)
	if err != nil {
		return nil, fmt.Errorf("failed to sum spend for budget %s in window %s: %w", budget.ID, window, err)
	}

	usage := UsagePercent(spent, budget.LimitBase)
	evaluation.SpentBase = spent
	// Truncated so the reported figure never reads as a threshold it has not reached.
	evaluation.UsagePercent = usage.Truncate(2)

	states, err := s.budgetRepo.GetThresholdStates(ctx, budget.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load threshold states for budget %s: %w", budget.ID, err)
	}

	crossed := EvaluateThresholds(usage, budget.EffectiveThresholds(), models.StateMap(states))
	if len(crossed) == 0 {
		return evaluation, nil
	}

	triggeredAt := s.now().UTC()
	newlyTriggered := make([]int, 0, len(crossed))

	for _, threshold := range crossed {
		newlySet, err := s.budgetRepo.MarkThresholdTriggered(ctx, budget.ID, threshold, triggeredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to mark threshold %d for budget %s: %w", threshold, budget.ID, err)
		}

		if !newlySet {
			s.eventLogger.LogThresholdAlreadyTriggered(ctx, budget.ID, threshold)
			continue
		}

		newlyTriggered = append(newlyTriggered, threshold)
		s.eventLogger.LogThresholdCrossed(ctx, budget.ID, threshold, evaluation.UsagePercent.String())
		s.metrics.IncrementCounter("budget.threshold.triggered", map[string]string{
			"threshold": strconv.Itoa(threshold),
		})
	}

	evaluation.NewlyTriggered = newlyTriggered
	if len(newlyTriggered) == 0 {
		return evaluation, nil
	}

	alert := &models.BudgetAlert{
		BudgetID:     budget.ID,
		OwnerID:      budget.OwnerID,
		Category:     budget.Category,
		Month:        budget.Month,
		Year:         budget.Year,
		Threshold:    HighestThreshold(newlyTriggered),
		UsagePercent: evaluation.UsagePercent,
		SpentBase:    spent,
		LimitBase:    budget.LimitBase,
		TriggeredAt:  triggeredAt,
	}
	evaluation.Alert = alert

	if err := s.notifier.NotifyBudgetAlert(ctx, alert); err != nil {
		s.eventLogger.LogAlertNotificationFailed(ctx, budget.ID, alert.Threshold, err.Error())
		s.metrics.IncrementCounter("budget.alert.notification", map[string]string{"status": "failed"})
	} else {
		s.metrics.IncrementCounter("budget.alert.notification", map[string]string{"status": "success"})
	}

	return evaluation, nil
}
