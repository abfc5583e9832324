package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	recordRepo  repositories.RecordRepositoryInterface
	currency    CurrencyServiceInterface
	alerts      BudgetAlertServiceInterface
	eventLogger EventLoggerInterface
	metrics     MetricsRecorderInterface

	// backfillCursor is the last record ID a backfill run looked at.
	backfillMu     sync.Mutex
	backfillCursor uuid.UUID
}

func NewTransactionService(
	recordRepo repositories.RecordRepositoryInterface,
	currency CurrencyServiceInterface,
	alerts BudgetAlertServiceInterface,
	eventLogger EventLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		recordRepo:  recordRepo,
		currency:    currency,
		alerts:      alerts,
		eventLogger: eventLogger,
		metrics:     metrics,
	}
}

// RecordTransaction stores an income or expense with its base-currency value
// and, for expenses, evaluates the matching budget. When rates are
// unavailable the record is stored without a base amount. A failed budget
// evaluation is logged and does not fail the write.
func (s *transactionService) RecordTransaction(ctx context.Context, record *models.MonetaryRecord) (*models.RecordOutcome, error) {
	if record == nil {
		return nil, errors.New("record cannot be nil")
	}

	record.NativeCurrency = strings.ToUpper(strings.TrimSpace(record.NativeCurrency))
	record.Category = strings.TrimSpace(record.Category)
	record.OccurredAt = record.OccurredAt.UTC()
	record.BaseAmount = nil

	if err := record.Validate(); err != nil {
		return nil, err
	}

	baseAmount, err := s.currency.ToBase(ctx, record.NativeAmount, record.NativeCurrency)
	switch {
	case err == nil:
		record.BaseAmount = &baseAmount
	case models.IsUpstreamUnavailable(err):
		slog.Warn("storing record without base amount, rates unavailable",
			"owner_id", record.OwnerID,
			"currency", record.NativeCurrency,
			"error", err)
	default:
		return nil, err
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}

	converted := record.HasBaseAmount()
	s.eventLogger.LogRecordStored(ctx, record.ID, record.Kind, converted)
	s.metrics.IncrementCounter("transaction.recorded", map[string]string{
		"kind":      record.Kind,
		"converted": strconv.FormatBool(converted),
	})

	outcome := &models.RecordOutcome{Record: record}
	if record.Kind != models.RecordKindExpense {
		return outcome, nil
	}

	evaluation, err := s.alerts.Evaluate(ctx, record.OwnerID, record.Category, int(record.OccurredAt.Month()), record.OccurredAt.Year())
	if err != nil {
		slog.Error("budget evaluation failed after recording expense",
			"record_id", record.ID,
			"category", record.Category,
			"error", err)
		return outcome, nil
	}

	if evaluation.BudgetID != nil {
		outcome.Evaluation = evaluation
	}

	return outcome, nil
}

// BackfillBaseAmounts converts up to limit records that were stored while
// rates were unavailable. Each run resumes after the last record the previous
// run looked at, so records that cannot be converted do not hold back newer
// ones; after the last page the sweep starts over. It stops at the first
// upstream failure and retries that record on the next run.
func (s *transactionService) BackfillBaseAmounts(ctx context.Context, limit int) (int, error) {
	s.backfillMu.Lock()
	defer s.backfillMu.Unlock()

	records, err := s.recordRepo.ListMissingBaseAmount(ctx, s.backfillCursor, limit)
	if err != nil {
		return 0, err
	}

	if limit <= 0 || len(records) < limit {
		defer func() { s.backfillCursor = uuid.Nil }()
	}

	updated := 0
	for _, record := range records {
		baseAmount, err := s.currency.ToBase(ctx, record.NativeAmount, record.NativeCurrency)
		if err != nil {
			if models.IsUpstreamUnavailable(err) {
				s.metrics.RecordGauge("records.backfilled", float64(updated), nil)
				return updated, err
			}
			slog.Warn("cannot backfill base amount",
				"record_id", record.ID,
				"currency", record.NativeCurrency,
				"error", err)
			s.backfillCursor = record.ID
			continue
		}

		if err := s.recordRepo.UpdateBaseAmount(ctx, record.ID, baseAmount); err != nil {
			s.metrics.RecordGauge("records.backfilled", float64(updated), nil)
			return updated, fmt.Errorf("failed to backfill record %s: %w", record.ID, err)
		}

		s.eventLogger.LogBaseAmountBackfilled(ctx, record.ID, baseAmount.String())
		s.backfillCursor = record.ID
		updated++
	}

	s.metrics.RecordGauge("records.backfilled", float64(updated), nil)
	return updated, nil
}
