package handlers

import (
	"net/http"
	"strings"
	"time"

	"finance-analytics/internal/dto"
	"finance-analytics/internal/errors"
	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"
	"finance-analytics/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles income and expense records
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	recordRepo         repositories.RecordRepositoryInterface
	now                func() time.Time
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	recordRepo repositories.RecordRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		recordRepo:         recordRepo,
		now:                time.Now,
	}
}

// RecordTransaction stores an income or expense record. Expenses are checked
// against the matching monthly budget and the evaluation is returned.
// @Summary Record transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param request body dto.RecordTransactionRequest true "Transaction"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / CURRENCY_001 / RECORD_002 / RECORD_003"
// @Router /transactions [post]
func (h *TransactionHandler) RecordTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	req := new(dto.RecordTransactionRequest)
	if err := c.Bind(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.RecordInvalidAmount)
	}

	occurredAt := h.now().UTC()
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	record := &models.MonetaryRecord{
		OwnerID:        ownerID,
		Kind:           strings.ToLower(strings.TrimSpace(req.Kind)),
		Category:       req.Category,
		NativeAmount:   amount,
		NativeCurrency: req.Currency,
		Description:    strings.TrimSpace(req.Description),
		OccurredAt:     occurredAt,
	}

	outcome, err := h.transactionService.RecordTransaction(c.Request().Context(), record)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.RecordTransactionResponse{
		Transaction: outcome.Record,
		Converted:   outcome.Record.HasBaseAmount(),
		Budget:      outcome.Evaluation,
	})
}

// ListTransactions lists the caller's records, oldest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param kind query string false "Filter by kind" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param limit query int false "Maximum number of records (max 500)" default(50)
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	filters, err := parseRecordFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	records, err := h.recordRepo.Query(c.Request().Context(), ownerID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: records,
		Count:        len(records),
		Limit:        filters.Limit,
	})
}

// GetTransaction returns one record owned by the caller
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} models.MonetaryRecord
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Transaction not found"
// @Router /transactions/{transactionId} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	recordID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	record, err := h.recordRepo.GetByID(c.Request().Context(), recordID)
	if err != nil {
		return SendServiceError(c, err)
	}

	// Records of other owners are reported as missing
	if record.OwnerID != ownerID {
		return SendError(c, errors.RecordNotFound)
	}

	return c.JSON(http.StatusOK, record)
}

// parseRecordFilters parses and validates record filter parameters
func parseRecordFilters(c echo.Context) (models.RecordFilters, error) {
	filters := models.RecordFilters{
		Limit: getIntParam(c, "limit", defaultPageLimit),
	}
	if filters.Limit <= 0 || filters.Limit > maxPageLimit {
		filters.Limit = defaultPageLimit
	}

	startDate, err := parseDateParam(c, "start_date")
	if err != nil {
		return filters, err
	}
	endDate, err := parseDateParam(c, "end_date")
	if err != nil {
		return filters, err
	}
	if endDate != nil && len(c.QueryParam("end_date")) == len(time.DateOnly) {
		// A bare end date includes the whole day
		end := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		endDate = &end
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return filters, models.ErrInvalidInput
	}
	filters.StartDate = startDate
	filters.EndDate = endDate

	if kind := strings.ToLower(strings.TrimSpace(c.QueryParam("kind"))); kind != "" {
		if kind != models.RecordKindIncome && kind != models.RecordKindExpense {
			return filters, models.ErrInvalidRecordKind
		}
		filters.Kind = kind
	}

	filters.Category = strings.TrimSpace(c.QueryParam("category"))
	return filters, nil
}
