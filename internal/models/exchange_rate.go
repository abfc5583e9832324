package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSnapshot is a complete rate table fetched at one instant.
// Rates are units of the keyed currency per one unit of Base. A snapshot is
// never mutated after construction; a refresh replaces it wholesale.
type ExchangeRateSnapshot struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetched_at"`
}

// Rate returns the rate for code and whether it is usable.
func (s *ExchangeRateSnapshot) Rate(code string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	rate, ok := s.Rates[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// Age returns how long ago the snapshot was fetched relative to now.
func (s *ExchangeRateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// IsFresh reports whether the snapshot is younger than ttl.
func (s *ExchangeRateSnapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	return s != nil && s.Age(now) < ttl
}

// ConversionResult is the response payload of a conversion request.
type ConversionResult struct {
	Amount       decimal.Decimal `json:"amount"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	Converted    decimal.Decimal `json:"converted"`
	BaseCurrency string          `json:"base_currency"`
	RatesAsOf    *time.Time      `json:"rates_as_of,omitempty"`
}
