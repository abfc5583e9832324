package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultRateCacheTTL     = time.Hour
	DefaultRateFetchTimeout = 10 * time.Second
)

type CurrencyServiceConfig struct {
	BaseCurrency string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	// AllowList restricts accepted codes. Empty accepts the circulating ISO
	// 4217 codes.
	AllowList []string
	Now       func() time.Time
}

type currencyService struct {
	provider       RateProviderInterface
	circuitBreaker CircuitBreakerInterface
	eventLogger    EventLoggerInterface
	metrics        MetricsRecorderInterface

	base         string
	ttl          time.Duration
	fetchTimeout time.Duration
	allowed      map[string]struct{}
	now          func() time.Time

	snapshot atomic.Pointer[models.ExchangeRateSnapshot]
}

// NewCurrencyService creates the process-wide currency normalizer. It starts
// with no rates; the first conversion that needs one triggers a fetch.
func NewCurrencyService(
	provider RateProviderInterface,
	circuitBreaker CircuitBreakerInterface,
	eventLogger EventLoggerInterface,
	metrics MetricsRecorderInterface,
	config CurrencyServiceConfig,
) CurrencyServiceInterface {
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultRateCacheTTL
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DefaultRateFetchTimeout
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	base := strings.ToUpper(strings.TrimSpace(config.BaseCurrency))
	if base == "" {
		base = "USD"
	}

	var allowed map[string]struct{}
	if len(config.AllowList) > 0 {
		allowed = make(map[string]struct{}, len(config.AllowList)+1)
		for _, code := range config.AllowList {
			allowed[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
		}
		allowed[base] = struct{}{}
	}

	return &currencyService{
		provider:       provider,
		circuitBreaker: circuitBreaker,
		eventLogger:    eventLogger,
		metrics:        metrics,
		base:           base,
		ttl:            config.CacheTTL,
		fetchTimeout:   config.FetchTimeout,
		allowed:        allowed,
		now:            config.Now,
	}
}

func (s *currencyService) BaseCurrency() string {
	return s.base
}

// ToBase converts amount in code to the base currency, rounded to cents.
func (s *currencyService) ToBase(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error) {
	code, err := s.normalizeCode(code)
	if err != nil {
		return decimal.Zero, err
	}
	if code == s.base {
		return amount.Round(2), nil
	}

	rate, _, err := s.rateFor(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Div(rate).Round(2), nil
}

// FromBase converts a base-currency amount into code, rounded to cents.
func (s *currencyService) FromBase(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error) {
	code, err := s.normalizeCode(code)
	if err != nil {
		return decimal.Zero, err
	}
	if code == s.base {
		return amount.Round(2), nil
	}

	rate, _, err := s.rateFor(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rate).Round(2), nil
}

// Convert converts between two arbitrary codes through the base currency.
// Only the final amount is rounded.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*models.ConversionResult, error) {
	from, err := s.normalizeCode(from)
	if err != nil {
		return nil, err
	}
	to, err = s.normalizeCode(to)
	if err != nil {
		return nil, err
	}

	result := &models.ConversionResult{
		Amount:       amount,
		From:         from,
		To:           to,
		BaseCurrency: s.base,
	}

	if from == to {
		result.Converted = amount.Round(2)
		return result, nil
	}

	inBase := amount
	var asOf time.Time

	if from != s.base {
		rate, fetchedAt, err := s.rateFor(ctx, from)
		if err != nil {
			return nil, err
		}
		inBase = inBase.Div(rate)
		asOf = fetchedAt
	}

	if to != s.base {
		rate, fetchedAt, err := s.rateFor(ctx, to)
		if err != nil {
			return nil, err
		}
		inBase = inBase.Mul(rate)
		asOf = fetchedAt
	}

	result.Converted = inBase.Round(2)
	result.RatesAsOf = &asOf
	return result, nil
}

// Snapshot returns a rate table, fetching when the cached one is missing or
// older than the TTL. A failed fetch falls back to the previous table, however
// old; only a process that never fetched successfully gets ErrRatesUnavailable.
func (s *currencyService) Snapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error) {
	current := s.snapshot.Load()
	if current.IsFresh(s.now(), s.ttl) {
		return current, nil
	}

	fetched, err := s.fetch(ctx)
	if err == nil {
		return s.store(fetched), nil
	}

	// Another caller may have refreshed while this fetch was failing.
	if latest := s.snapshot.Load(); latest != nil {
		age := latest.Age(s.now())
		s.eventLogger.LogRatesStale(ctx, s.base, age, err.Error())
		s.metrics.IncrementCounter("currency.rates.stale_served", map[string]string{"base": s.base})
		s.metrics.RecordGauge("currency.rates.age_seconds", age.Seconds(), map[string]string{"base": s.base})
		return latest, nil
	}

	return nil, fmt.Errorf("%w: %w", models.ErrRatesUnavailable, err)
}

// Warm performs the initial fetch. Failure is reported but leaves the service usable.
func (s *currencyService) Warm(ctx context.Context) error {
	_, err := s.Snapshot(ctx)
	return err
}

// Refresh fetches regardless of the cached table's age. On failure the
// cached table stays in place.
func (s *currencyService) Refresh(ctx context.Context) error {
	fetched, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.store(fetched)
	return nil
}

// Close drops the cached table. Later calls behave as if nothing was ever fetched.
func (s *currencyService) Close() {
	s.snapshot.Store(nil)
}

func (s *currencyService) rateFor(ctx context.Context, code string) (decimal.Decimal, time.Time, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}

	rate, ok := snap.Rate(code)
	if !ok {
		return decimal.Zero, time.Time{}, fmt.Errorf("%w: no rate for %s", models.ErrUnsupportedCurrency, code)
	}

	return rate, snap.FetchedAt, nil
}

func (s *currencyService) fetch(ctx context.Context) (*models.ExchangeRateSnapshot, error) {
	if s.circuitBreaker.IsOpen() {
		s.metrics.IncrementCounter("currency.rates.fetch", map[string]string{"status": "circuit_open"})
		return nil, fmt.Errorf("%w: %w", models.ErrRateFetchFailed, ErrCircuitBreakerOpen)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	snap, err := s.provider.FetchRates(fetchCtx, s.base)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime("currency.rates.fetch", duration)

	if err == nil && (snap == nil || !strings.EqualFold(snap.Base, s.base)) {
		err = fmt.Errorf("%w: provider returned a table for another base", models.ErrRateFetchFailed)
	}

	if err != nil {
		s.circuitBreaker.RecordFailure()
		s.metrics.IncrementCounter("currency.rates.fetch", map[string]string{"status": "failed"})
		s.eventLogger.LogRateFetchFailed(ctx, s.base, err.Error())
		return nil, err
	}

	s.circuitBreaker.RecordSuccess()
	s.metrics.IncrementCounter("currency.rates.fetch", map[string]string{"status": "success"})
	s.eventLogger.LogRatesRefreshed(ctx, s.base, len(snap.Rates), duration.Milliseconds())

	if snap.FetchedAt.IsZero() {
		clone := *snap
		clone.FetchedAt = s.now().UTC()
		snap = &clone
	}

	return snap, nil
}

// store installs fresh unless a newer table is already in place, and returns
// whichever table ends up current.
func (s *currencyService) store(fresh *models.ExchangeRateSnapshot) *models.ExchangeRateSnapshot {
	for {
		current := s.snapshot.Load()
		if current != nil && !fresh.FetchedAt.After(current.FetchedAt) {
			return current
		}
		if s.snapshot.CompareAndSwap(current, fresh) {
			return fresh
		}
	}
}

func (s *currencyService) normalizeCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !isCurrencyCode(normalized) {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedCurrency, code)
	}

	if s.allowed != nil {
		if _, ok := s.allowed[normalized]; !ok {
			return "", fmt.Errorf("%w: %s is not enabled", models.ErrUnsupportedCurrency, normalized)
		}
		return normalized, nil
	}

	if normalized != s.base && !models.IsISOCurrency(normalized) {
		return "", fmt.Errorf("%w: %s is not an ISO 4217 currency", models.ErrUnsupportedCurrency, normalized)
	}

	return normalized, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
