package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type analyticsService struct {
	recordRepo repositories.RecordRepositoryInterface
	currency   CurrencyServiceInterface
	periods    PeriodRangeServiceInterface
	metrics    MetricsRecorderInterface
}

func NewAnalyticsService(
	recordRepo repositories.RecordRepositoryInterface,
	currency CurrencyServiceInterface,
	periods PeriodRangeServiceInterface,
	metrics MetricsRecorderInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		recordRepo: recordRepo,
		currency:   currency,
		periods:    periods,
		metrics:    metrics,
	}
}

// GetTrend returns income, expense and savings for the last count periods,
// one point per period label including empty periods.
//
// A weekly window spans count*7 days ending today while points are keyed by
// ISO week, so unless today is a Sunday the window touches count+1 weeks and
// the trend has count+1 points, the first one partial.
func (s *analyticsService) GetTrend(ctx context.Context, ownerID uuid.UUID, granularity models.Granularity, count int) (*models.Trend, error) {
	defer s.observe(time.Now())

	window, err := s.periods.BuildRange(granularity, count)
	if err != nil {
		s.countRequest("trend", "invalid")
		return nil, err
	}

	income, expense, err := s.loadIncomeAndExpense(ctx, ownerID, window)
	if err != nil {
		s.countRequest("trend", "failed")
		return nil, err
	}

	points := MergeWithin(window,
		AggregateByPeriod(income, granularity),
		AggregateByPeriod(expense, granularity),
	)

	s.countRequest("trend", "success")
	return &models.Trend{
		OwnerID:      ownerID,
		Window:       window,
		BaseCurrency: s.currency.BaseCurrency(),
		Points:       points,
	}, nil
}

// GetMonthlySummary totals income and expense for one calendar month.
func (s *analyticsService) GetMonthlySummary(ctx context.Context, ownerID uuid.UUID, month, year int) (*models.PeriodSummary, error) {
	defer s.observe(time.Now())

	window, err := s.periods.BuildMonthRange(month, year)
	if err != nil {
		s.countRequest("summary", "invalid")
		return nil, err
	}

	income, expense, err := s.loadIncomeAndExpense(ctx, ownerID, window)
	if err != nil {
		s.countRequest("summary", "failed")
		return nil, err
	}

	incomeBuckets := AggregateByPeriod(income, models.GranularityMonthly)
	expenseBuckets := AggregateByPeriod(expense, models.GranularityMonthly)

	totalIncome := SumBuckets(incomeBuckets).Round(2)
	totalExpense := SumBuckets(expenseBuckets).Round(2)
	savings := totalIncome.Sub(totalExpense)

	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = savings.Mul(hundred).Div(totalIncome).Round(2)
	}

	s.countRequest("summary", "success")
	return &models.PeriodSummary{
		OwnerID:      ownerID,
		Window:       window,
		BaseCurrency: s.currency.BaseCurrency(),
		Income:       totalIncome,
		Expense:      totalExpense,
		Savings:      savings,
		SavingsRate:  savingsRate,
		IncomeCount:  CountBuckets(incomeBuckets),
		ExpenseCount: CountBuckets(expenseBuckets),
	}, nil
}

// GetCategoryBreakdown returns category totals of one kind for a month. With
// limit > 0 the smallest categories are folded into Others.
func (s *analyticsService) GetCategoryBreakdown(ctx context.Context, ownerID uuid.UUID, kind string, month, year, limit int) (*models.CategoryBreakdown, error) {
	defer s.observe(time.Now())

	if !models.IsValidRecordKind(kind) {
		s.countRequest("categories", "invalid")
		return nil, models.ErrInvalidRecordKind
	}

	window, err := s.periods.BuildMonthRange(month, year)
	if err != nil {
		s.countRequest("categories", "invalid")
		return nil, err
	}

	buckets, err := s.recordRepo.AggregateByCategory(ctx, ownerID, kind, window)
	if err != nil {
		s.countRequest("categories", "failed")
		return nil, fmt.Errorf("failed to aggregate %s categories: %w", kind, err)
	}

	total, shares := CategoryShares(CollapseCategories(buckets, limit))

	s.countRequest("categories", "success")
	return &models.CategoryBreakdown{
		OwnerID:      ownerID,
		Kind:         kind,
		Window:       window,
		BaseCurrency: s.currency.BaseCurrency(),
		Total:        total,
		Categories:   shares,
	}, nil
}

func (s *analyticsService) loadIncomeAndExpense(ctx context.Context, ownerID uuid.UUID, window models.PeriodWindow) ([]models.MonetaryRecord, []models.MonetaryRecord, error) {
	var income, expense []models.MonetaryRecord

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		records, err := s.loadRecords(egCtx, ownerID, models.RecordKindIncome, window)
		income = records
		return err
	})
	eg.Go(func() error {
		records, err := s.loadRecords(egCtx, ownerID, models.RecordKindExpense, window)
		expense = records
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return income, expense, nil
}

func (s *analyticsService) loadRecords(ctx context.Context, ownerID uuid.UUID, kind string, window models.PeriodWindow) ([]models.MonetaryRecord, error) {
	records, err := s.recordRepo.Query(ctx, ownerID, models.WindowFilters(kind, window))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records for window %s: %w", kind, window, err)
	}

	s.fillBaseAmounts(ctx, records)
	return records, nil
}

// fillBaseAmounts converts records stored without a base amount. Records that
// cannot be converted keep the native fallback.
func (s *analyticsService) fillBaseAmounts(ctx context.Context, records []models.MonetaryRecord) {
	for i := range records {
		if records[i].HasBaseAmount() {
			continue
		}

		converted, err := s.currency.ToBase(ctx, records[i].NativeAmount, records[i].NativeCurrency)
		if err != nil {
			slog.Warn("using native amount for record without base amount",
				"record_id", records[i].ID,
				"currency", records[i].NativeCurrency,
				"error", err)
			if models.IsUpstreamUnavailable(err) {
				return
			}
			continue
		}

		records[i].BaseAmount = &converted
	}
}

func (s *analyticsService) observe(start time.Time) {
	s.metrics.RecordProcessingTime("analytics.request", time.Since(start))
}

func (s *analyticsService) countRequest(operation, status string) {
	s.metrics.IncrementCounter("analytics.request", map[string]string{
		"operation": operation,
		"status":    status,
	})
}
