package services

import (
	"testing"
	"time"

	"finance-analytics/internal/models"

	"github.com/stretchr/testify/suite"
)

type PeriodRangeServiceTestSuite struct {
	suite.Suite
	now     time.Time
	service PeriodRangeServiceInterface
}

func TestPeriodRangeServiceSuite(t *testing.T) {
	suite.Run(t, new(PeriodRangeServiceTestSuite))
}

func (s *PeriodRangeServiceTestSuite) SetupTest() {
	s.now = time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)
	s.service = NewPeriodRangeService(func() time.Time { return s.now })
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_Monthly() {
	window, err := s.service.BuildRange(models.GranularityMonthly, 3)
	s.Require().NoError(err)

	s.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), window.Start)
	s.Equal(time.Date(2026, time.March, 31, 23, 59, 59, 999999999, time.UTC), window.End)
	s.Equal(models.GranularityMonthly, window.Granularity)
	s.Equal([]string{"2026-01", "2026-02", "2026-03"}, window.PeriodKeys())
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_MonthlyCrossesYear() {
	window, err := s.service.BuildRange(models.GranularityMonthly, 6)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), window.Start)
	s.Len(window.PeriodKeys(), 6)
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_Weekly() {
	window, err := s.service.BuildRange(models.GranularityWeekly, 2)
	s.Require().NoError(err)

	s.Equal(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), window.Start)
	s.Equal(time.Date(2026, time.March, 15, 23, 59, 59, 999999999, time.UTC), window.End)
	s.Equal(14*24*time.Hour, window.End.Sub(window.Start)+time.Nanosecond)
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_Yearly() {
	window, err := s.service.BuildRange(models.GranularityYearly, 2)
	s.Require().NoError(err)

	s.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), window.Start)
	s.Equal(time.Date(2026, time.December, 31, 23, 59, 59, 999999999, time.UTC), window.End)
	s.Equal([]string{"2025", "2026"}, window.PeriodKeys())
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_NormalizesToUTC() {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 2026-04-01 02:00 in UTC+9 is still March in UTC.
	s.now = time.Date(2026, time.April, 1, 2, 0, 0, 0, loc)

	window, err := s.service.BuildRange(models.GranularityMonthly, 1)
	s.Require().NoError(err)

	s.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), window.Start)
	s.Equal(time.UTC, window.Start.Location())
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_InvalidInput() {
	testCases := []struct {
		name        string
		granularity models.Granularity
		count       int
		expected    error
	}{
		{"zero count", models.GranularityMonthly, 0, models.ErrInvalidCount},
		{"negative count", models.GranularityWeekly, -2, models.ErrInvalidCount},
		{"unknown granularity", models.Granularity("daily"), 3, models.ErrInvalidGranularity},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.BuildRange(tc.granularity, tc.count)
			s.ErrorIs(err, tc.expected)
			s.True(models.IsInvalidInput(err))
		})
	}
}

func (s *PeriodRangeServiceTestSuite) TestBuildRange_StartNeverAfterEnd() {
	for _, g := range []models.Granularity{models.GranularityWeekly, models.GranularityMonthly, models.GranularityYearly} {
		for count := 1; count <= 24; count++ {
			window, err := s.service.BuildRange(g, count)
			s.Require().NoError(err)
			s.False(window.Start.After(window.End), "%s x%d", g, count)
			s.True(window.Contains(s.now), "%s x%d should contain now", g, count)
		}
	}
}

func (s *PeriodRangeServiceTestSuite) TestBuildMonthRange() {
	testCases := []struct {
		month, year int
		lastDay     int
	}{
		{1, 2026, 31},
		{2, 2024, 29},
		{2, 2026, 28},
		{12, 2025, 31},
	}

	for _, tc := range testCases {
		window, err := s.service.BuildMonthRange(tc.month, tc.year)
		s.Require().NoError(err)
		s.Equal(time.Date(tc.year, time.Month(tc.month), 1, 0, 0, 0, 0, time.UTC), window.Start)
		s.Equal(tc.lastDay, window.End.Day())
		s.Equal(23, window.End.Hour())
		s.True(window.End.Add(time.Nanosecond).Equal(window.Start.AddDate(0, 1, 0)))
	}
}

func (s *PeriodRangeServiceTestSuite) TestBuildMonthRange_InvalidMonth() {
	for _, month := range []int{0, 13, -1} {
		_, err := s.service.BuildMonthRange(month, 2026)
		s.ErrorIs(err, models.ErrInvalidMonth)
	}
}
