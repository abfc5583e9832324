package database

import (
	"fmt"
	"testing"
	"time"

	"finance-analytics/internal/config"
	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"budget_threshold_states",
	"budgets",
	"monetary_records",
}

// SetupTestDB opens a migrated in-memory sqlite database. The pool is
// pinned to one connection since every connection to ":memory:" is a
// separate database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = testDB.Close() })

	return testDB
}

// CreateTestRecord stores a record whose base amount equals its native amount.
func CreateTestRecord(t *testing.T, db *DB, ownerID uuid.UUID, kind, category string, amount decimal.Decimal, occurredAt time.Time) *models.MonetaryRecord {
	t.Helper()

	base := amount
	record := &models.MonetaryRecord{
		OwnerID:        ownerID,
		Kind:           kind,
		Category:       category,
		NativeAmount:   amount,
		NativeCurrency: "USD",
		BaseAmount:     &base,
		OccurredAt:     occurredAt,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}

	return record
}

// CreateTestBudget stores a USD budget for the given month.
func CreateTestBudget(t *testing.T, db *DB, ownerID uuid.UUID, category string, month, year int, limit decimal.Decimal, thresholds ...int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		OwnerID:     ownerID,
		Category:    category,
		Month:       month,
		Year:        year,
		LimitAmount: limit,
		Currency:    "USD",
		LimitBase:   limit,
		Thresholds:  models.ThresholdList(thresholds),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
