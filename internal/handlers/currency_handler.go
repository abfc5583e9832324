package handlers

import (
	"net/http"
	"time"

	"finance-analytics/internal/dto"
	"finance-analytics/internal/errors"
	"finance-analytics/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CurrencyHandler exposes conversions and the cached rate table
type CurrencyHandler struct {
	currencyService services.CurrencyServiceInterface
	now             func() time.Time
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(currencyService services.CurrencyServiceInterface) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
		now:             time.Now,
	}
}

// Convert converts an amount between two supported currencies through the base currency
// @Summary Convert an amount
// @Tags Currency
// @Produce json
// @Param amount query string true "Amount, at most 2 decimal places"
// @Param from query string true "Source currency (ISO 4217)"
// @Param to query string true "Target currency (ISO 4217)"
// @Success 200 {object} models.ConversionResult
// @Failure 400 {object} errors.ErrorResponse "CURRENCY_001 - Unsupported currency"
// @Failure 503 {object} errors.ErrorResponse "CURRENCY_002 - Rates unavailable, retry later"
// @Router /currency/convert [get]
func (h *CurrencyHandler) Convert(c echo.Context) error {
	var query dto.ConvertQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("amount must be a decimal number"))
	}

	result, err := h.currencyService.Convert(c.Request().Context(), amount, query.From, query.To)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetRates returns the rate table currently used for conversions
// @Summary Current exchange rates
// @Tags Currency
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Failure 503 {object} errors.ErrorResponse "CURRENCY_002 - Rates unavailable, retry later"
// @Router /currency/rates [get]
func (h *CurrencyHandler) GetRates(c echo.Context) error {
	snapshot, err := h.currencyService.Snapshot(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RatesResponse{
		Base:       snapshot.Base,
		FetchedAt:  snapshot.FetchedAt,
		AgeSeconds: int64(snapshot.Age(h.now()).Seconds()),
		Rates:      snapshot.Rates,
	})
}
