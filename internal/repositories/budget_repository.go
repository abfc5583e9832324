package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-analytics/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for category and period")
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("ThresholdStates").Create(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by ID: %w", err)
	}

	return &budget, nil
}

// Find looks up the budget for an owner, category and calendar month.
func (r *budgetRepository) Find(ctx context.Context, ownerID uuid.UUID, category string, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND category = ? AND month = ? AND year = ?", ownerID, category, month, year).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return &budget, nil
}

// Delete removes the budget together with its threshold states.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", id).Delete(&models.BudgetThresholdState{}).Error; err != nil {
			return fmt.Errorf("failed to delete threshold states: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Budget{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete budget: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrBudgetNotFound
		}

		return nil
	})
}

func (r *budgetRepository) GetThresholdStates(ctx context.Context, budgetID uuid.UUID) ([]models.BudgetThresholdState, error) {
	var states []models.BudgetThresholdState
	err := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("threshold ASC").
		Find(&states).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get threshold states: %w", err)
	}

	return states, nil
}

// MarkThresholdTriggered is an idempotent set-true. The insert creates the
// row already triggered; if a row exists, the conditional update only
// touches it while it is still false. The flag is never written false.
func (r *budgetRepository) MarkThresholdTriggered(ctx context.Context, budgetID uuid.UUID, threshold int, at time.Time) (bool, error) {
	at = at.UTC()
	state := &models.BudgetThresholdState{
		BudgetID:    budgetID,
		Threshold:   threshold,
		Triggered:   true,
		TriggeredAt: &at,
		CreatedAt:   at,
		UpdatedAt:   at,
	}

	inserted := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "budget_id"}, {Name: "threshold"}},
			DoNothing: true,
		}).
		Create(state)
	if inserted.Error != nil {
		return false, fmt.Errorf("failed to insert threshold state: %w", inserted.Error)
	}

	if inserted.RowsAffected == 1 {
		return true, nil
	}

	updated := r.db.WithContext(ctx).
		Model(&models.BudgetThresholdState{}).
		Where("budget_id = ? AND threshold = ? AND triggered = ?", budgetID, threshold, false).
		Updates(map[string]interface{}{
			"triggered":    true,
			"triggered_at": at,
			"updated_at":   at,
		})
	if updated.Error != nil {
		return false, fmt.Errorf("failed to mark threshold triggered: %w", updated.Error)
	}

	return updated.RowsAffected == 1, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
