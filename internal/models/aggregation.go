package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OthersCategory is the key used for the collapsed tail of a category breakdown.
const OthersCategory = "Others"

// AggregationBucket is a running total keyed by period label or category.
type AggregationBucket struct {
	Key       string          `json:"key"`
	TotalBase decimal.Decimal `json:"total_base"`
	Count     int64           `json:"count"`
}

// TimeSeriesPoint is one aligned period of a merged income/expense series.
type TimeSeriesPoint struct {
	PeriodKey string          `json:"period"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Savings   decimal.Decimal `json:"savings"`
}

// CategoryShare is a category bucket with its share of the breakdown total.
type CategoryShare struct {
	Category   string          `json:"category"`
	TotalBase  decimal.Decimal `json:"total_base"`
	Count      int64           `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Trend is a merged series over a window.
type Trend struct {
	OwnerID      uuid.UUID         `json:"owner_id"`
	Window       PeriodWindow      `json:"window"`
	BaseCurrency string            `json:"base_currency"`
	Points       []TimeSeriesPoint `json:"points"`
}

// CategoryBreakdown lists category totals for one record kind over a window.
type CategoryBreakdown struct {
	OwnerID      uuid.UUID       `json:"owner_id"`
	Kind         string          `json:"kind"`
	Window       PeriodWindow    `json:"window"`
	BaseCurrency string          `json:"base_currency"`
	Total        decimal.Decimal `json:"total"`
	Categories   []CategoryShare `json:"categories"`
}

// PeriodSummary holds income and expense totals for a single month.
type PeriodSummary struct {
	OwnerID      uuid.UUID       `json:"owner_id"`
	Window       PeriodWindow    `json:"window"`
	BaseCurrency string          `json:"base_currency"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Savings      decimal.Decimal `json:"savings"`
	SavingsRate  decimal.Decimal `json:"savings_rate"`
	IncomeCount  int64           `json:"income_count"`
	ExpenseCount int64           `json:"expense_count"`
}
