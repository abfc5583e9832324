package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBudget() Budget {
	return Budget{
		OwnerID:     uuid.New(),
		Category:    "groceries",
		Month:       1,
		Year:        2026,
		LimitAmount: decimal.NewFromInt(600),
		Currency:    "USD",
		LimitBase:   decimal.NewFromInt(600),
	}
}

func TestBudget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Budget)
		wantErr error
	}{
		{"valid", func(b *Budget) {}, nil},
		{"month too low", func(b *Budget) { b.Month = 0 }, ErrInvalidMonth},
		{"month too high", func(b *Budget) { b.Month = 13 }, ErrInvalidMonth},
		{"zero limit", func(b *Budget) { b.LimitAmount = decimal.Zero }, ErrInvalidBudgetLimit},
		{"bad currency", func(b *Budget) { b.Currency = "US" }, ErrUnsupportedCurrency},
		{"bad threshold", func(b *Budget) { b.Thresholds = ThresholdList{0} }, ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBudget()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBudget_EffectiveThresholds(t *testing.T) {
	b := validBudget()
	assert.Equal(t, ThresholdList{80, 100}, b.EffectiveThresholds())

	b.Thresholds = ThresholdList{50, 90}
	assert.Equal(t, ThresholdList{50, 90}, b.EffectiveThresholds())
}

func TestBudget_Window(t *testing.T) {
	b := validBudget()
	b.Month = 2
	b.Year = 2024

	w := b.Window()
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)
	assert.Equal(t, GranularityMonthly, w.Granularity)
}

func TestNormalizeThresholds(t *testing.T) {
	got, err := NormalizeThresholds([]int{100, 50, 80, 50})
	require.NoError(t, err)
	assert.Equal(t, ThresholdList{50, 80, 100}, got)

	got, err = NormalizeThresholds(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = NormalizeThresholds([]int{80, 1001})
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestThresholdList_ValueScan(t *testing.T) {
	value, err := ThresholdList{80, 100}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[80,100]", value)

	var scanned ThresholdList
	require.NoError(t, scanned.Scan([]byte("[50,75]")))
	assert.Equal(t, ThresholdList{50, 75}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))

	empty, err := ThresholdList{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestStateMap(t *testing.T) {
	id := uuid.New()
	m := StateMap([]BudgetThresholdState{
		{BudgetID: id, Threshold: 80, Triggered: true},
		{BudgetID: id, Threshold: 100, Triggered: false},
	})

	assert.True(t, m[80])
	assert.False(t, m[100])
	_, exists := m[50]
	assert.False(t, exists)
}
