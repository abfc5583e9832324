package services

import (
	"sort"

	"finance-analytics/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AggregateByPeriod sums records into buckets keyed by canonical period label.
// Records without a stored base amount contribute their native amount.
// Buckets are returned in chronological order.
func AggregateByPeriod(records []models.MonetaryRecord, granularity models.Granularity) []models.AggregationBucket {
	return aggregate(records, func(r *models.MonetaryRecord) string {
		return models.PeriodKey(r.OccurredAt, granularity)
	})
}

// AggregateByCategory sums records into buckets keyed by category, ordered by key.
func AggregateByCategory(records []models.MonetaryRecord) []models.AggregationBucket {
	return aggregate(records, func(r *models.MonetaryRecord) string {
		return r.Category
	})
}

func aggregate(records []models.MonetaryRecord, keyOf func(*models.MonetaryRecord) string) []models.AggregationBucket {
	index := make(map[string]int)
	buckets := make([]models.AggregationBucket, 0)

	for i := range records {
		key := keyOf(&records[i])
		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, models.AggregationBucket{Key: key, TotalBase: decimal.Zero})
		}
		buckets[pos].TotalBase = buckets[pos].TotalBase.Add(records[i].EffectiveBaseAmount())
		buckets[pos].Count++
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key < buckets[j].Key })
	return buckets
}

// Merge aligns an income series and an expense series by period label. Every
// label present on either side yields one point; a missing side counts as
// zero. Values are rounded to two decimals and points are sorted by label.
func Merge(income, expense []models.AggregationBucket) []models.TimeSeriesPoint {
	return merge(nil, income, expense)
}

// MergeWithin behaves like Merge and also emits a zero point for every label
// of window that has no data on either side.
func MergeWithin(window models.PeriodWindow, income, expense []models.AggregationBucket) []models.TimeSeriesPoint {
	return merge(window.PeriodKeys(), income, expense)
}

func merge(fill []string, income, expense []models.AggregationBucket) []models.TimeSeriesPoint {
	points := make(map[string]*models.TimeSeriesPoint)
	pointFor := func(key string) *models.TimeSeriesPoint {
		p, ok := points[key]
		if !ok {
			p = &models.TimeSeriesPoint{PeriodKey: key, Income: decimal.Zero, Expense: decimal.Zero}
			points[key] = p
		}
		return p
	}

	for _, key := range fill {
		pointFor(key)
	}
	for _, b := range income {
		p := pointFor(b.Key)
		p.Income = p.Income.Add(b.TotalBase)
	}
	for _, b := range expense {
		p := pointFor(b.Key)
		p.Expense = p.Expense.Add(b.TotalBase)
	}

	series := make([]models.TimeSeriesPoint, 0, len(points))
	for _, p := range points {
		p.Income = p.Income.Round(2)
		p.Expense = p.Expense.Round(2)
		p.Savings = p.Income.Sub(p.Expense).Round(2)
		series = append(series, *p)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].PeriodKey < series[j].PeriodKey })
	return series
}

// CollapseCategories orders buckets by total descending, ties broken by key.
// With limit > 0 and more buckets than limit, everything past the first
// limit entries is folded into a single Others bucket carrying the exact sum
// of the folded totals and counts. A real Others category kept in the head
// absorbs the tail instead of producing a second Others entry.
func CollapseCategories(buckets []models.AggregationBucket, limit int) []models.AggregationBucket {
	sorted := make([]models.AggregationBucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].TotalBase.Cmp(sorted[j].TotalBase); c != 0 {
			return c > 0
		}
		return sorted[i].Key < sorted[j].Key
	})

	if limit <= 0 || len(sorted) <= limit {
		return sorted
	}

	head := sorted[:limit]
	tail := sorted[limit:]

	others := models.AggregationBucket{Key: models.OthersCategory, TotalBase: decimal.Zero}
	for _, b := range tail {
		others.TotalBase = others.TotalBase.Add(b.TotalBase)
		others.Count += b.Count
	}

	result := make([]models.AggregationBucket, 0, limit+1)
	merged := false
	for _, b := range head {
		if b.Key == models.OthersCategory {
			b.TotalBase = b.TotalBase.Add(others.TotalBase)
			b.Count += others.Count
			merged = true
		}
		result = append(result, b)
	}
	if !merged {
		result = append(result, others)
	}

	return result
}

// CategoryShares computes each bucket's percentage of the grand total, in
// bucket order. The grand total is returned alongside.
func CategoryShares(buckets []models.AggregationBucket) (decimal.Decimal, []models.CategoryShare) {
	total := SumBuckets(buckets)

	shares := make([]models.CategoryShare, 0, len(buckets))
	for _, b := range buckets {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = b.TotalBase.Mul(hundred).Div(total).Round(2)
		}
		shares = append(shares, models.CategoryShare{
			Category:   b.Key,
			TotalBase:  b.TotalBase.Round(2),
			Count:      b.Count,
			Percentage: pct,
		})
	}

	return total.Round(2), shares
}

// SumBuckets totals the buckets without rounding.
func SumBuckets(buckets []models.AggregationBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.TotalBase)
	}
	return total
}

// CountBuckets totals the record counts of the buckets.
func CountBuckets(buckets []models.AggregationBucket) int64 {
	var n int64
	for _, b := range buckets {
		n += b.Count
	}
	return n
}
