package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecordKindIncome  = "income"
	RecordKindExpense = "expense"
)

// MonetaryRecord is a single income or expense entry in the currency it was
// entered in. BaseAmount holds the base-currency value computed when the
// record was last written; nil means the conversion was not available then.
type MonetaryRecord struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_records_owner_kind_occurred,priority:1" json:"owner_id"`
	Kind           string           `gorm:"type:varchar(10);not null;index:idx_records_owner_kind_occurred,priority:2" json:"kind"`
	Category       string           `gorm:"type:varchar(50);not null;index" json:"category"`
	NativeAmount   decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"native_amount"`
	NativeCurrency string           `gorm:"type:varchar(3);not null" json:"native_currency"`
	BaseAmount     *decimal.Decimal `gorm:"type:decimal(15,2)" json:"base_amount,omitempty"`
	Description    string           `gorm:"type:text" json:"description,omitempty"`
	OccurredAt     time.Time        `gorm:"not null;index:idx_records_owner_kind_occurred,priority:3" json:"occurred_at"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
}

func (r *MonetaryRecord) TableName() string {
	return "monetary_records"
}

// BeforeCreate hook for MonetaryRecord
func (r *MonetaryRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	r.NativeCurrency = strings.ToUpper(strings.TrimSpace(r.NativeCurrency))
	r.OccurredAt = r.OccurredAt.UTC()

	return r.Validate()
}

// BeforeUpdate hook for MonetaryRecord
func (r *MonetaryRecord) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the record fields
func (r *MonetaryRecord) Validate() error {
	if r.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: owner ID is required", ErrInvalidInput)
	}

	if !IsValidRecordKind(r.Kind) {
		return ErrInvalidRecordKind
	}

	if r.NativeAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(r.NativeCurrency) != 3 {
		return ErrUnsupportedCurrency
	}

	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if len(r.Category) > 50 {
		return fmt.Errorf("%w: category too long", ErrInvalidInput)
	}

	if r.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred at is required", ErrInvalidInput)
	}

	return nil
}

// EffectiveBaseAmount returns the stored base amount, falling back to the
// native amount when no conversion was recorded.
func (r *MonetaryRecord) EffectiveBaseAmount() decimal.Decimal {
	if r.BaseAmount != nil {
		return *r.BaseAmount
	}
	return r.NativeAmount
}

// HasBaseAmount reports whether a base-currency value was stored.
func (r *MonetaryRecord) HasBaseAmount() bool {
	return r.BaseAmount != nil
}

func IsValidRecordKind(kind string) bool {
	return kind == RecordKindIncome || kind == RecordKindExpense
}

// RecordOutcome is the result of recording a transaction. Evaluation is set
// for expenses that fall under a budget.
type RecordOutcome struct {
	Record     *MonetaryRecord   `json:"record"`
	Evaluation *BudgetEvaluation `json:"budget_evaluation,omitempty"`
}
