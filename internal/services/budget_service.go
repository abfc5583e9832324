package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo        repositories.BudgetRepositoryInterface
	currency          CurrencyServiceInterface
	defaultThresholds models.ThresholdList
}

// NewBudgetService creates the budget service. defaultThresholds are stored on
// budgets created without explicit thresholds; when empty, evaluation falls
// back to models.DefaultThresholds.
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	currency CurrencyServiceInterface,
	defaultThresholds []int,
) BudgetServiceInterface {
	normalized, err := models.NormalizeThresholds(defaultThresholds)
	if err != nil {
		slog.Warn("ignoring invalid default budget thresholds",
			"thresholds", defaultThresholds,
			"error", err)
		normalized = nil
	}

	return &budgetService{
		budgetRepo:        budgetRepo,
		currency:          currency,
		defaultThresholds: normalized,
	}
}

// CreateBudget stores a monthly budget. The limit is converted to the base
// currency once, at creation time.
func (s *budgetService) CreateBudget(ctx context.Context, ownerID uuid.UUID, category string, month, year int, limit decimal.Decimal, currency string, thresholds []int) (*models.Budget, error) {
	if _, err := BuildMonthRange(month, year); err != nil {
		return nil, err
	}

	if !limit.IsPositive() {
		return nil, models.ErrInvalidBudgetLimit
	}

	normalized, err := models.NormalizeThresholds(thresholds)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		normalized = s.defaultThresholds
	}

	limitBase, err := s.currency.ToBase(ctx, limit, currency)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		OwnerID:     ownerID,
		Category:    strings.TrimSpace(category),
		Month:       month,
		Year:        year,
		LimitAmount: limit.Round(2),
		Currency:    strings.ToUpper(strings.TrimSpace(currency)),
		LimitBase:   limitBase,
		Thresholds:  normalized,
	}

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.Info("budget created",
		"budget_id", budget.ID,
		"owner_id", ownerID,
		"category", budget.Category,
		"period", fmt.Sprintf("%04d-%02d", year, month))

	return budget, nil
}

// GetBudget returns the budget when it belongs to ownerID.
func (s *budgetService) GetBudget(ctx context.Context, ownerID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if budget.OwnerID != ownerID {
		return nil, repositories.ErrBudgetNotFound
	}

	return budget, nil
}

// DeleteBudget removes the budget and its threshold states.
func (s *budgetService) DeleteBudget(ctx context.Context, ownerID, budgetID uuid.UUID) error {
	if _, err := s.GetBudget(ctx, ownerID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		return err
	}

	slog.Info("budget deleted", "budget_id", budgetID, "owner_id", ownerID)
	return nil
}
