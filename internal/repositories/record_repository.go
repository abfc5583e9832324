package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("monetary record not found")
)

// effectiveBaseExpr sums stored base amounts and falls back to the native
// amount for records written while rates were unavailable.
const effectiveBaseExpr = "COALESCE(base_amount, native_amount)"

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new monetary record repository
func NewRecordRepository(db *gorm.DB) RecordRepositoryInterface {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) Create(ctx context.Context, record *models.MonetaryRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MonetaryRecord, error) {
	var record models.MonetaryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record by ID: %w", err)
	}

	return &record, nil
}

// Query returns the owner's records matching filters, oldest first.
func (r *recordRepository) Query(ctx context.Context, ownerID uuid.UUID, filters models.RecordFilters) ([]models.MonetaryRecord, error) {
	var records []models.MonetaryRecord

	query := r.db.WithContext(ctx).Model(&models.MonetaryRecord{}).Where("owner_id = ?", ownerID)

	if filters.Kind != "" {
		query = query.Where("kind = ?", filters.Kind)
	}

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Order("occurred_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	return records, nil
}

type categoryTotalRow struct {
	Category string
	Total    decimal.NullDecimal
	Count    int64
}

// AggregateByCategory groups the owner's records of one kind in the window
// by category. Buckets come back ordered by category.
func (r *recordRepository) AggregateByCategory(ctx context.Context, ownerID uuid.UUID, kind string, window models.PeriodWindow) ([]models.AggregationBucket, error) {
	var rows []categoryTotalRow

	err := r.db.WithContext(ctx).
		Model(&models.MonetaryRecord{}).
		Select("category, SUM("+effectiveBaseExpr+") AS total, COUNT(*) AS count").
		Where("owner_id = ? AND kind = ?", ownerID, kind).
		Where("occurred_at >= ? AND occurred_at <= ?", window.Start, window.End).
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records by category for window %s: %w", window, err)
	}

	buckets := make([]models.AggregationBucket, 0, len(rows))
	for _, row := range rows {
		total := decimal.Zero
		if row.Total.Valid {
			total = row.Total.Decimal.Round(2)
		}
		buckets = append(buckets, models.AggregationBucket{
			Key:       row.Category,
			TotalBase: total,
			Count:     row.Count,
		})
	}

	return buckets, nil
}

type sumRow struct {
	Total decimal.NullDecimal
}

// SumBaseAmount totals the owner's records of one kind and category in the window.
func (r *recordRepository) SumBaseAmount(ctx context.Context, ownerID uuid.UUID, category, kind string, window models.PeriodWindow) (decimal.Decimal, error) {
	var row sumRow

	err := r.db.WithContext(ctx).
		Model(&models.MonetaryRecord{}).
		Select("SUM("+effectiveBaseExpr+") AS total").
		Where("owner_id = ? AND kind = ? AND category = ?", ownerID, kind, category).
		Where("occurred_at >= ? AND occurred_at <= ?", window.Start, window.End).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s records for window %s: %w", kind, window, err)
	}

	if !row.Total.Valid {
		return decimal.Zero, nil
	}

	return row.Total.Decimal.Round(2), nil
}

func (r *recordRepository) UpdateBaseAmount(ctx context.Context, id uuid.UUID, baseAmount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.MonetaryRecord{}).
		Where("id = ?", id).
		Update("base_amount", baseAmount.Round(2))

	if result.Error != nil {
		return fmt.Errorf("failed to update base amount: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ListMissingBaseAmount returns records stored without a base amount whose
// ID sorts after afterID, in ID order.
func (r *recordRepository) ListMissingBaseAmount(ctx context.Context, afterID uuid.UUID, limit int) ([]models.MonetaryRecord, error) {
	var records []models.MonetaryRecord

	query := r.db.WithContext(ctx).Where("base_amount IS NULL")
	if afterID != uuid.Nil {
		query = query.Where("id > ?", afterID)
	}
	query = query.Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records missing base amount: %w", err)
	}

	return records, nil
}
