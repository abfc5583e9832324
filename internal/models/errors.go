package models

import (
	"errors"
	"fmt"
)

// Error classes. Specific errors wrap one of these so callers can classify
// failures with errors.Is without knowing every individual sentinel.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var (
	ErrUnsupportedCurrency = fmt.Errorf("%w: unsupported currency", ErrInvalidInput)
	ErrInvalidGranularity  = fmt.Errorf("%w: invalid granularity", ErrInvalidInput)
	ErrInvalidCount        = fmt.Errorf("%w: period count must be positive", ErrInvalidInput)
	ErrInvalidMonth        = fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	ErrInvalidThreshold    = fmt.Errorf("%w: threshold must be between 1 and 1000", ErrInvalidInput)
	ErrInvalidRecordKind   = fmt.Errorf("%w: record kind must be income or expense", ErrInvalidInput)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrInvalidBudgetLimit  = fmt.Errorf("%w: budget limit must be positive", ErrInvalidInput)

	ErrRatesUnavailable = fmt.Errorf("%w: exchange rates unavailable", ErrUpstreamUnavailable)
	ErrRateFetchFailed  = fmt.Errorf("%w: exchange rate fetch failed", ErrUpstreamUnavailable)
)

// IsInvalidInput reports whether err belongs to the invalid input class.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUpstreamUnavailable reports whether err belongs to the retryable upstream class.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
