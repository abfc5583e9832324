package repositories

import (
	"context"
	"time"

	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordRepositoryInterface defines the contract for monetary record storage
type RecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.MonetaryRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MonetaryRecord, error)
	Query(ctx context.Context, ownerID uuid.UUID, filters models.RecordFilters) ([]models.MonetaryRecord, error)
	AggregateByCategory(ctx context.Context, ownerID uuid.UUID, kind string, window models.PeriodWindow) ([]models.AggregationBucket, error)
	SumBaseAmount(ctx context.Context, ownerID uuid.UUID, category, kind string, window models.PeriodWindow) (decimal.Decimal, error)
	UpdateBaseAmount(ctx context.Context, id uuid.UUID, baseAmount decimal.Decimal) error
	// ListMissingBaseAmount pages through records without a base amount in ID
	// order, starting after afterID (uuid.Nil for the first page).
	ListMissingBaseAmount(ctx context.Context, afterID uuid.UUID, limit int) ([]models.MonetaryRecord, error)
}

// BudgetRepositoryInterface defines the contract for budget and threshold state storage
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	Find(ctx context.Context, ownerID uuid.UUID, category string, month, year int) (*models.Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetThresholdStates(ctx context.Context, budgetID uuid.UUID) ([]models.BudgetThresholdState, error)
	// MarkThresholdTriggered sets the flag for (budgetID, threshold) to true.
	// newlySet is false when another writer already set it.
	MarkThresholdTriggered(ctx context.Context, budgetID uuid.UUID, threshold int, at time.Time) (newlySet bool, err error)
}
