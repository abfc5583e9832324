package dto

import (
	"finance-analytics/internal/models"
)

// CreateBudgetRequest represents the request payload for creating a monthly category budget
type CreateBudgetRequest struct {
	Category   string `json:"category" validate:"required,min=1,max=50"`
	Month      int    `json:"month" validate:"required,min=1,max=12"`
	Year       int    `json:"year" validate:"required,min=1970,max=9999"`
	Limit      string `json:"limit" validate:"required,positive_amount"`
	Currency   string `json:"currency" validate:"required,currency_code"`
	Thresholds []int  `json:"thresholds" validate:"omitempty,max=10,thresholds"`
}

// BudgetResponse wraps a budget with the thresholds actually applied to it
type BudgetResponse struct {
	*models.Budget
	EffectiveThresholds models.ThresholdList `json:"effective_thresholds"`
}

// BudgetStatusResponse reports current usage of a budget
type BudgetStatusResponse struct {
	Budget     BudgetResponse           `json:"budget"`
	Evaluation *models.BudgetEvaluation `json:"evaluation"`
}

// NewBudgetResponse builds the response representation of a budget
func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	return BudgetResponse{
		Budget:              budget,
		EffectiveThresholds: budget.EffectiveThresholds(),
	}
}
