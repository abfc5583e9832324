package services

import (
	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// UsagePercent returns 100 * spent / limit. A non-positive limit yields zero.
func UsagePercent(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(limit)
}

// EvaluateThresholds returns, ascending, every threshold that usage has
// reached and that has not fired yet.
func EvaluateThresholds(usage decimal.Decimal, thresholds models.ThresholdList, fired models.ThresholdStateMap) []int {
	var crossed []int
	for _, t := range thresholds {
		if fired[t] {
			continue
		}
		if usage.GreaterThanOrEqual(decimal.NewFromInt(int64(t))) {
			crossed = append(crossed, t)
		}
	}
	return crossed
}

// HighestThreshold returns the largest value of thresholds, or zero.
func HighestThreshold(thresholds []int) int {
	highest := 0
	for _, t := range thresholds {
		if t > highest {
			highest = t
		}
	}
	return highest
}
