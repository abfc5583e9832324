package dto

import (
	"time"

	"finance-analytics/internal/models"
)

// RecordTransactionRequest represents the request payload for recording income or an expense
type RecordTransactionRequest struct {
	Kind        string     `json:"kind" validate:"required,record_kind"`
	Category    string     `json:"category" validate:"required,min=1,max=50"`
	Amount      string     `json:"amount" validate:"required,positive_amount"`
	Currency    string     `json:"currency" validate:"required,currency_code"`
	Description string     `json:"description" validate:"max=255"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

// RecordTransactionResponse is returned after a transaction is stored. Budget
// evaluation is present for expenses that fall under a budget.
type RecordTransactionResponse struct {
	Transaction *models.MonetaryRecord   `json:"transaction"`
	Converted   bool                     `json:"converted"`
	Budget      *models.BudgetEvaluation `json:"budget_evaluation,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.MonetaryRecord `json:"transactions"`
	Count        int                     `json:"count"`
	Limit        int                     `json:"limit"`
}
