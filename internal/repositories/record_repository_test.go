package repositories

import (
	"context"
	"sort"
	"testing"
	"time"

	"finance-analytics/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RecordRepositoryTestSuite is the test suite for the monetary record repository
type RecordRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    RecordRepositoryInterface
	ctx     context.Context
	ownerID uuid.UUID
	january models.PeriodWindow
}

func (s *RecordRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.MonetaryRecord{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewRecordRepository(db)
	s.ctx = context.Background()
	s.ownerID = uuid.New()
	s.january = models.PeriodWindow{
		Start:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		Granularity: models.GranularityMonthly,
	}
}

func (s *RecordRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecordRepositoryTestSuite))
}

func (s *RecordRepositoryTestSuite) createRecord(kind, category string, native float64, base *float64, at time.Time) *models.MonetaryRecord {
	record := &models.MonetaryRecord{
		OwnerID:        s.ownerID,
		Kind:           kind,
		Category:       category,
		NativeAmount:   decimal.NewFromFloat(native),
		NativeCurrency: "USD",
		Description:    gofakeit.Sentence(4),
		OccurredAt:     at,
	}
	if base != nil {
		b := decimal.NewFromFloat(*base)
		record.BaseAmount = &b
	}
	require.NoError(s.T(), s.repo.Create(s.ctx, record))
	return record
}

func ptr(f float64) *float64 { return &f }

func (s *RecordRepositoryTestSuite) TestCreate_AssignsIDAndNormalizesCurrency() {
	record := &models.MonetaryRecord{
		OwnerID:        s.ownerID,
		Kind:           models.RecordKindExpense,
		Category:       "dining",
		NativeAmount:   decimal.NewFromFloat(12.34),
		NativeCurrency: "eur",
		OccurredAt:     time.Date(2026, 1, 3, 19, 0, 0, 0, time.UTC),
	}

	err := s.repo.Create(s.ctx, record)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, record.ID)
	assert.Equal(s.T(), "EUR", record.NativeCurrency)

	found, err := s.repo.GetByID(s.ctx, record.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), found.NativeAmount.Equal(decimal.NewFromFloat(12.34)))
	assert.Nil(s.T(), found.BaseAmount)
}

func (s *RecordRepositoryTestSuite) TestCreate_RejectsInvalidRecord() {
	err := s.repo.Create(s.ctx, &models.MonetaryRecord{OwnerID: s.ownerID, Kind: "bogus"})
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrInvalidRecordKind)

	err = s.repo.Create(s.ctx, nil)
	assert.Error(s.T(), err)
}

func (s *RecordRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, ErrRecordNotFound)
}

func (s *RecordRepositoryTestSuite) TestQuery_FiltersByWindowAndKind() {
	s.createRecord(models.RecordKindIncome, "salary", 5000, ptr(5000), time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "rent", 1500, ptr(1500), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "groceries", 80, ptr(80), time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "groceries", 99, ptr(99), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "groceries", 11, ptr(11), time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))

	records, err := s.repo.Query(s.ctx, s.ownerID, models.WindowFilters(models.RecordKindExpense, s.january))
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 2)
	assert.Equal(s.T(), "rent", records[0].Category)
	assert.Equal(s.T(), "groceries", records[1].Category)

	other, err := s.repo.Query(s.ctx, uuid.New(), models.RecordFilters{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), other)

	byCategory, err := s.repo.Query(s.ctx, s.ownerID, models.RecordFilters{Category: "groceries", Limit: 2})
	require.NoError(s.T(), err)
	assert.Len(s.T(), byCategory, 2)
}

func (s *RecordRepositoryTestSuite) TestAggregateByCategory_FallsBackToNativeAmount() {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s.createRecord(models.RecordKindExpense, "groceries", 100, ptr(110.25), at)
	s.createRecord(models.RecordKindExpense, "groceries", 50, nil, at)
	s.createRecord(models.RecordKindExpense, "dining", 30, ptr(30), at)
	s.createRecord(models.RecordKindIncome, "salary", 3000, ptr(3000), at)

	buckets, err := s.repo.AggregateByCategory(s.ctx, s.ownerID, models.RecordKindExpense, s.january)
	require.NoError(s.T(), err)
	require.Len(s.T(), buckets, 2)

	assert.Equal(s.T(), "dining", buckets[0].Key)
	assert.True(s.T(), buckets[0].TotalBase.Equal(decimal.NewFromInt(30)))
	assert.Equal(s.T(), int64(1), buckets[0].Count)

	assert.Equal(s.T(), "groceries", buckets[1].Key)
	assert.True(s.T(), buckets[1].TotalBase.Equal(decimal.NewFromFloat(160.25)), buckets[1].TotalBase.String())
	assert.Equal(s.T(), int64(2), buckets[1].Count)
}

func (s *RecordRepositoryTestSuite) TestSumBaseAmount() {
	s.createRecord(models.RecordKindExpense, "groceries", 400, ptr(400), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "groceries", 80, ptr(80), time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "dining", 70, ptr(70), time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	s.createRecord(models.RecordKindExpense, "groceries", 999, ptr(999), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	total, err := s.repo.SumBaseAmount(s.ctx, s.ownerID, "groceries", models.RecordKindExpense, s.january)
	require.NoError(s.T(), err)
	assert.True(s.T(), total.Equal(decimal.NewFromInt(480)), total.String())

	empty, err := s.repo.SumBaseAmount(s.ctx, s.ownerID, "travel", models.RecordKindExpense, s.january)
	require.NoError(s.T(), err)
	assert.True(s.T(), empty.IsZero())
}

func (s *RecordRepositoryTestSuite) TestUpdateBaseAmount_AndListMissing() {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	missing := s.createRecord(models.RecordKindExpense, "groceries", 50, nil, at)
	s.createRecord(models.RecordKindExpense, "groceries", 20, ptr(20), at)

	pending, err := s.repo.ListMissingBaseAmount(s.ctx, uuid.Nil, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), missing.ID, pending[0].ID)

	err = s.repo.UpdateBaseAmount(s.ctx, missing.ID, decimal.NewFromFloat(54.3456))
	require.NoError(s.T(), err)

	updated, err := s.repo.GetByID(s.ctx, missing.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), updated.BaseAmount)
	assert.True(s.T(), updated.BaseAmount.Equal(decimal.NewFromFloat(54.35)))

	pending, err = s.repo.ListMissingBaseAmount(s.ctx, uuid.Nil, 10)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), pending)

	err = s.repo.UpdateBaseAmount(s.ctx, uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(s.T(), err, ErrRecordNotFound)
}

func (s *RecordRepositoryTestSuite) TestListMissingBaseAmount_PagesAfterCursor() {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		ids = append(ids, s.createRecord(models.RecordKindExpense, "groceries", 10, nil, at).ID.String())
	}
	s.createRecord(models.RecordKindExpense, "groceries", 20, ptr(20), at)
	sort.Strings(ids)

	first, err := s.repo.ListMissingBaseAmount(s.ctx, uuid.Nil, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), first, 2)
	assert.Equal(s.T(), ids[0], first[0].ID.String())
	assert.Equal(s.T(), ids[1], first[1].ID.String())

	second, err := s.repo.ListMissingBaseAmount(s.ctx, first[1].ID, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), second, 1)
	assert.Equal(s.T(), ids[2], second[0].ID.String())

	last, err := s.repo.ListMissingBaseAmount(s.ctx, second[0].ID, 2)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), last)
}
