package models

import (
	"time"
)

// RecordFilters contains filtering options for monetary record queries.
// Zero values mean "no filter".
type RecordFilters struct {
	Kind      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// WindowFilters restricts a query to the given kind within the window.
func WindowFilters(kind string, window PeriodWindow) RecordFilters {
	start, end := window.Start, window.End
	return RecordFilters{
		Kind:      kind,
		StartDate: &start,
		EndDate:   &end,
	}
}
