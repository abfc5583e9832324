package database

import (
	"context"
	"testing"
	"time"

	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupTestDB_MigratesSchema(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range testTables {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.MonetaryRecord{}, "idx_records_missing_base"))
	assert.True(t, db.Migrator().HasIndex(&models.Budget{}, "idx_budgets_owner_period"))
}

func TestTestHelpers(t *testing.T) {
	db := SetupTestDB(t)
	ownerID := uuid.New()

	record := CreateTestRecord(t, db, ownerID, models.RecordKindExpense, "groceries", decimal.NewFromInt(42), time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	budget := CreateTestBudget(t, db, ownerID, "groceries", 1, 2026, decimal.NewFromInt(600), 80, 100)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.NotEqual(t, uuid.Nil, budget.ID)

	var stored models.Budget
	require.NoError(t, db.First(&stored, "id = ?", budget.ID).Error)
	assert.Equal(t, models.ThresholdList{80, 100}, stored.Thresholds)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.MonetaryRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransaction_RollsBack(t *testing.T) {
	db := SetupTestDB(t)
	ownerID := uuid.New()

	err := db.Transaction(func(tx *gorm.DB) error {
		base := decimal.NewFromInt(10)
		if err := tx.Create(&models.MonetaryRecord{
			OwnerID:        ownerID,
			Kind:           models.RecordKindIncome,
			Category:       "salary",
			NativeAmount:   base,
			NativeCurrency: "USD",
			BaseAmount:     &base,
			OccurredAt:     time.Now(),
		}).Error; err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Model(&models.MonetaryRecord{}).Where("owner_id = ?", ownerID).Count(&count).Error)
	assert.Zero(t, count)
}
