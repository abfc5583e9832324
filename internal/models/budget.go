package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultThresholds are used when a budget has no thresholds of its own.
var DefaultThresholds = ThresholdList{80, 100}

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_category_period,priority:1" json:"owner_id"`
	Category    string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_owner_category_period,priority:2" json:"category"`
	Month       int             `gorm:"not null;uniqueIndex:idx_budgets_owner_category_period,priority:3" json:"month"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budgets_owner_category_period,priority:4" json:"year"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limit_amount"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	LimitBase   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limit_base"`
	Thresholds  ThresholdList   `gorm:"type:text" json:"thresholds,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	ThresholdStates []BudgetThresholdState `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *Budget) TableName() string {
	return "budgets"
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UTC()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: owner ID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(b.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}

	if b.Year < 1970 {
		return fmt.Errorf("%w: year %d", ErrInvalidInput, b.Year)
	}

	if !b.LimitAmount.IsPositive() {
		return ErrInvalidBudgetLimit
	}

	if len(b.Currency) != 3 {
		return ErrUnsupportedCurrency
	}

	_, err := NormalizeThresholds(b.Thresholds)
	return err
}

// EffectiveThresholds returns the configured thresholds, or the defaults.
func (b *Budget) EffectiveThresholds() ThresholdList {
	if len(b.Thresholds) == 0 {
		return DefaultThresholds
	}
	return b.Thresholds
}

// Window returns the calendar month the budget covers.
func (b *Budget) Window() PeriodWindow {
	start := time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC)
	return PeriodWindow{
		Start:       start,
		End:         start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		Granularity: GranularityMonthly,
	}
}

// BudgetThresholdState records whether one threshold of a budget has fired.
// Rows only exist once written and Triggered only ever moves to true.
type BudgetThresholdState struct {
	BudgetID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"budget_id"`
	Threshold   int        `gorm:"primaryKey;autoIncrement:false" json:"threshold"`
	Triggered   bool       `gorm:"not null;default:false" json:"triggered"`
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (s *BudgetThresholdState) TableName() string {
	return "budget_threshold_states"
}

// ThresholdStateMap indexes triggered flags by threshold value.
type ThresholdStateMap map[int]bool

// StateMap builds a ThresholdStateMap from persisted rows.
func StateMap(states []BudgetThresholdState) ThresholdStateMap {
	m := make(ThresholdStateMap, len(states))
	for _, st := range states {
		m[st.Threshold] = st.Triggered
	}
	return m
}

// BudgetAlert is the single alert reported by one evaluation.
type BudgetAlert struct {
	BudgetID     uuid.UUID       `json:"budget_id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Category     string          `json:"category"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Threshold    int             `json:"threshold"`
	UsagePercent decimal.Decimal `json:"usage_percent"`
	SpentBase    decimal.Decimal `json:"spent_base"`
	LimitBase    decimal.Decimal `json:"limit_base"`
	TriggeredAt  time.Time       `json:"triggered_at"`
}

// BudgetEvaluation is the outcome of evaluating a budget after a new expense.
// Alert is nil when nothing new fired or no budget exists.
type BudgetEvaluation struct {
	BudgetID       *uuid.UUID      `json:"budget_id,omitempty"`
	UsagePercent   decimal.Decimal `json:"usage_percent"`
	SpentBase      decimal.Decimal `json:"spent_base"`
	LimitBase      decimal.Decimal `json:"limit_base"`
	NewlyTriggered []int           `json:"newly_triggered"`
	Alert          *BudgetAlert    `json:"alert,omitempty"`
}

// ThresholdList is an ordered set of percentage thresholds.
type ThresholdList []int

// NormalizeThresholds sorts ascending and removes duplicates. Every value
// must lie in [1, 1000].
func NormalizeThresholds(in []int) (ThresholdList, error) {
	if len(in) == 0 {
		return nil, nil
	}

	seen := make(map[int]struct{}, len(in))
	out := make(ThresholdList, 0, len(in))
	for _, t := range in {
		if t < 1 || t > 1000 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, t)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Ints(out)
	return out, nil
}

// Value implements driver.Valuer interface
func (l ThresholdList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]int(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (l *ThresholdList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ThresholdList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	var tmp []int
	if err := json.Unmarshal(bytes, &tmp); err != nil {
		return err
	}
	*l = ThresholdList(tmp)
	return nil
}
