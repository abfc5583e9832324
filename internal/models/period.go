package models

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the bucket size used to partition a time range.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity accepts the canonical names case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
	return g, nil
}

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityWeekly, GranularityMonthly, GranularityYearly:
		return true
	}
	return false
}

func (g Granularity) String() string {
	return string(g)
}

// PeriodKey returns the canonical label of the bucket containing t:
// ISO week "2006-W01", month "2006-01" or year "2006". Labels of one
// granularity sort lexicographically in chronological order.
func PeriodKey(t time.Time, g Granularity) string {
	t = t.UTC()
	switch g {
	case GranularityWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityYearly:
		return fmt.Sprintf("%04d", t.Year())
	default:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	}
}

// PeriodWindow is an inclusive [Start, End] range in UTC.
type PeriodWindow struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity"`
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// PeriodKeys lists, in chronological order, the label of every bucket the
// window touches.
func (w PeriodWindow) PeriodKeys() []string {
	if w.End.Before(w.Start) {
		return nil
	}

	var (
		keys   []string
		cursor time.Time
		step   func(time.Time) time.Time
	)

	start := w.Start.UTC()
	switch w.Granularity {
	case GranularityWeekly:
		offset := (int(start.Weekday()) + 6) % 7
		cursor = time.Date(start.Year(), start.Month(), start.Day()-offset, 0, 0, 0, 0, time.UTC)
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
	case GranularityYearly:
		cursor = time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		step = func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }
	default:
		cursor = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	}

	for !cursor.After(w.End) {
		keys = append(keys, PeriodKey(cursor, w.Granularity))
		cursor = step(cursor)
	}

	return keys
}

func (w PeriodWindow) String() string {
	return fmt.Sprintf("%s %s..%s", w.Granularity, w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339Nano))
}
