package handlers

import (
	"net/http"

	"finance-analytics/internal/dto"
	"finance-analytics/internal/errors"
	"finance-analytics/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles monthly category budgets
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	alertService  services.BudgetAlertServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	alertService services.BudgetAlertServiceInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		alertService:  alertService,
	}
}

// CreateBudget creates a budget for one category and month
// @Summary Create budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / CURRENCY_001 / BUDGET_004"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Budget already exists"
// @Failure 503 {object} errors.ErrorResponse "CURRENCY_002 - Rates unavailable, retry later"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	req := new(dto.CreateBudgetRequest)
	if err := c.Bind(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	budget, err := h.budgetService.CreateBudget(
		c.Request().Context(), ownerID, req.Category, req.Month, req.Year, limit, req.Currency, req.Thresholds,
	)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBudgetResponse(budget))
}

// GetBudget returns one budget owned by the caller
// @Summary Get budget
// @Tags Budgets
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param budgetId path string true "Budget ID (UUID)"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{budgetId} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	ownerID, budgetID, ok, err := h.parseBudgetRequest(c)
	if !ok {
		return err
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), ownerID, budgetID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// GetBudgetStatus evaluates current spend against the budget. Thresholds that
// are crossed now are recorded and alerted exactly as on a new expense.
// @Summary Budget usage
// @Tags Budgets
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param budgetId path string true "Budget ID (UUID)"
// @Success 200 {object} dto.BudgetStatusResponse
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{budgetId}/status [get]
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	ownerID, budgetID, ok, err := h.parseBudgetRequest(c)
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	budget, err := h.budgetService.GetBudget(ctx, ownerID, budgetID)
	if err != nil {
		return SendServiceError(c, err)
	}

	evaluation, err := h.alertService.Evaluate(ctx, ownerID, budget.Category, budget.Month, budget.Year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetStatusResponse{
		Budget:     dto.NewBudgetResponse(budget),
		Evaluation: evaluation,
	})
}

// DeleteBudget removes a budget and its threshold state
// @Summary Delete budget
// @Tags Budgets
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param budgetId path string true "Budget ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{budgetId} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	ownerID, budgetID, ok, err := h.parseBudgetRequest(c)
	if !ok {
		return err
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), ownerID, budgetID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseBudgetRequest resolves the owner and path budget ID. When ok is false
// the error response has already been written and err is its send result.
func (h *BudgetHandler) parseBudgetRequest(c echo.Context) (ownerID, budgetID uuid.UUID, ok bool, err error) {
	ownerID, err = getOwnerIDFromContext(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.OwnerMissing)
	}

	budgetID, err = uuid.Parse(c.Param("budgetId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	return ownerID, budgetID, true, nil
}
