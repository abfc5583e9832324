package services

import (
	"testing"

	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		name     string
		spent    string
		limit    string
		expected string
	}{
		{"zero spend", "0", "600", "0"},
		{"two thirds", "400", "600", "66.6666666666666667"},
		{"exactly at limit", "600", "600", "100"},
		{"over limit", "620", "600", "103.3333333333333333"},
		{"zero limit", "50", "0", "0"},
		{"negative limit", "50", "-10", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UsagePercent(decimal.RequireFromString(tt.spent), decimal.RequireFromString(tt.limit))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestEvaluateThresholds(t *testing.T) {
	thresholds := models.ThresholdList{50, 80, 100}

	tests := []struct {
		name     string
		usage    string
		fired    models.ThresholdStateMap
		expected []int
	}{
		{"below all", "49.99", nil, nil},
		{"exactly at threshold", "80", nil, []int{50, 80}},
		{"all crossed", "150", nil, []int{50, 80, 100}},
		{"skips fired", "95", models.ThresholdStateMap{50: true}, []int{80}},
		{"recorded but not triggered", "85", models.ThresholdStateMap{80: false}, []int{50, 80}},
		{"nothing new", "85", models.ThresholdStateMap{50: true, 80: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateThresholds(decimal.RequireFromString(tt.usage), thresholds, tt.fired)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateThresholds_Monotonic(t *testing.T) {
	thresholds := models.ThresholdList{25, 50, 75, 100, 150}
	previous := 0
	for usage := 0; usage <= 200; usage += 5 {
		crossed := EvaluateThresholds(decimal.NewFromInt(int64(usage)), thresholds, nil)
		assert.GreaterOrEqual(t, len(crossed), previous, "usage %d", usage)
		previous = len(crossed)
	}
}

func TestHighestThreshold(t *testing.T) {
	assert.Equal(t, 0, HighestThreshold(nil))
	assert.Equal(t, 100, HighestThreshold([]int{80, 100}))
	assert.Equal(t, 120, HighestThreshold([]int{120, 80, 100}))
}
