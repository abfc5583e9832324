package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonetaryRecord_Validate(t *testing.T) {
	ownerID := uuid.New()
	occurred := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  MonetaryRecord
		wantErr bool
		errIs   error
	}{
		{
			name: "valid expense",
			record: MonetaryRecord{
				OwnerID:        ownerID,
				Kind:           RecordKindExpense,
				Category:       "groceries",
				NativeAmount:   decimal.NewFromFloat(42.50),
				NativeCurrency: "EUR",
				OccurredAt:     occurred,
			},
		},
		{
			name: "invalid kind",
			record: MonetaryRecord{
				OwnerID:        ownerID,
				Kind:           "transfer",
				Category:       "groceries",
				NativeAmount:   decimal.NewFromInt(1),
				NativeCurrency: "EUR",
				OccurredAt:     occurred,
			},
			wantErr: true,
			errIs:   ErrInvalidRecordKind,
		},
		{
			name: "non positive amount",
			record: MonetaryRecord{
				OwnerID:        ownerID,
				Kind:           RecordKindIncome,
				Category:       "salary",
				NativeAmount:   decimal.Zero,
				NativeCurrency: "USD",
				OccurredAt:     occurred,
			},
			wantErr: true,
			errIs:   ErrInvalidAmount,
		},
		{
			name: "missing owner",
			record: MonetaryRecord{
				Kind:           RecordKindIncome,
				Category:       "salary",
				NativeAmount:   decimal.NewFromInt(1),
				NativeCurrency: "USD",
				OccurredAt:     occurred,
			},
			wantErr: true,
		},
		{
			name: "missing category",
			record: MonetaryRecord{
				OwnerID:        ownerID,
				Kind:           RecordKindIncome,
				NativeAmount:   decimal.NewFromInt(1),
				NativeCurrency: "USD",
				OccurredAt:     occurred,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, IsInvalidInput(err))
			}
		})
	}
}

func TestMonetaryRecord_EffectiveBaseAmount(t *testing.T) {
	r := MonetaryRecord{NativeAmount: decimal.NewFromInt(100)}
	assert.False(t, r.HasBaseAmount())
	assert.True(t, r.EffectiveBaseAmount().Equal(decimal.NewFromInt(100)))

	base := decimal.NewFromFloat(108.70)
	r.BaseAmount = &base
	assert.True(t, r.HasBaseAmount())
	assert.True(t, r.EffectiveBaseAmount().Equal(base))
}

func TestExchangeRateSnapshot_Rate(t *testing.T) {
	snap := &ExchangeRateSnapshot{
		Base:      "USD",
		Rates:     map[string]decimal.Decimal{"EUR": decimal.NewFromFloat(0.92), "BAD": decimal.Zero},
		FetchedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	rate, ok := snap.Rate("EUR")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.92)))

	_, ok = snap.Rate("BAD")
	assert.False(t, ok)

	_, ok = snap.Rate("JPY")
	assert.False(t, ok)

	var nilSnap *ExchangeRateSnapshot
	_, ok = nilSnap.Rate("EUR")
	assert.False(t, ok)

	assert.True(t, snap.IsFresh(snap.FetchedAt.Add(59*time.Minute), time.Hour))
	assert.False(t, snap.IsFresh(snap.FetchedAt.Add(time.Hour), time.Hour))
	assert.False(t, nilSnap.IsFresh(snap.FetchedAt, time.Hour))
}

func TestErrorClasses(t *testing.T) {
	assert.True(t, IsInvalidInput(ErrUnsupportedCurrency))
	assert.True(t, IsInvalidInput(ErrInvalidCount))
	assert.False(t, IsUpstreamUnavailable(ErrInvalidMonth))
	assert.True(t, IsUpstreamUnavailable(ErrRatesUnavailable))
	assert.True(t, IsUpstreamUnavailable(ErrRateFetchFailed))
	assert.False(t, IsInvalidInput(ErrRatesUnavailable))
}
