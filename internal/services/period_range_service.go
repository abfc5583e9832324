package services

import (
	"time"

	"finance-analytics/internal/models"
)

type periodRangeService struct {
	now func() time.Time
}

// NewPeriodRangeService creates a range builder bound to a clock. A nil clock
// uses the wall clock.
func NewPeriodRangeService(now func() time.Time) PeriodRangeServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &periodRangeService{now: now}
}

func (s *periodRangeService) BuildRange(granularity models.Granularity, count int) (models.PeriodWindow, error) {
	return BuildRange(s.now(), granularity, count)
}

func (s *periodRangeService) BuildMonthRange(month, year int) (models.PeriodWindow, error) {
	return BuildMonthRange(month, year)
}

// BuildRange returns the window covering count periods of the given
// granularity that ends with the period containing now. Both ends are
// inclusive and expressed in UTC.
func BuildRange(now time.Time, granularity models.Granularity, count int) (models.PeriodWindow, error) {
	if count <= 0 {
		return models.PeriodWindow{}, models.ErrInvalidCount
	}

	now = now.UTC()
	var start, end time.Time

	switch granularity {
	case models.GranularityMonthly:
		current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		start = current.AddDate(0, -(count - 1), 0)
		end = lastInstantBefore(current.AddDate(0, 1, 0))
	case models.GranularityWeekly:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = today.AddDate(0, 0, -(count*7 - 1))
		end = lastInstantBefore(today.AddDate(0, 0, 1))
	case models.GranularityYearly:
		current := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		start = current.AddDate(-(count - 1), 0, 0)
		end = lastInstantBefore(current.AddDate(1, 0, 0))
	default:
		return models.PeriodWindow{}, models.ErrInvalidGranularity
	}

	return models.PeriodWindow{Start: start, End: end, Granularity: granularity}, nil
}

// BuildMonthRange returns the window of a single calendar month.
func BuildMonthRange(month, year int) (models.PeriodWindow, error) {
	if month < 1 || month > 12 {
		return models.PeriodWindow{}, models.ErrInvalidMonth
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return models.PeriodWindow{
		Start:       start,
		End:         lastInstantBefore(start.AddDate(0, 1, 0)),
		Granularity: models.GranularityMonthly,
	}, nil
}

func lastInstantBefore(t time.Time) time.Time {
	return t.Add(-time.Nanosecond)
}
