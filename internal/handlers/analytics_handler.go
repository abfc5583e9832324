package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"finance-analytics/internal/dto"
	"finance-analytics/internal/errors"
	"finance-analytics/internal/models"
	"finance-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	analyticsCacheTTL     = time.Minute
	defaultBreakdownLimit = 0
)

// AnalyticsHandler serves trend, summary and category breakdown views
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	metrics          services.MetricsRecorderInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analyticsService services.AnalyticsServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		metrics:          metrics,
	}
}

// GetTrend returns income, expense and savings per period
// @Summary Income and expense trend
// @Tags Analytics
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param granularity query string true "Period size" Enums(weekly, monthly, yearly)
// @Param count query int true "Number of periods including the current one (weekly: count*7 days, up to count+1 ISO weeks)"
// @Success 200 {object} models.Trend
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / PERIOD_001 / PERIOD_002"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner identity"
// @Router /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var query dto.TrendQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	granularity, err := models.ParseGranularity(query.Granularity)
	if err != nil {
		return SendServiceError(c, err)
	}

	trend, err := h.analyticsService.GetTrend(c.Request().Context(), ownerID, granularity, query.Count)
	if err != nil {
		return SendServiceError(c, err)
	}

	h.metrics.IncrementCounter("analytics.trend", map[string]string{"granularity": string(granularity)})
	setPrivateCache(c)
	return c.JSON(http.StatusOK, trend)
}

// GetMonthlySummary returns income, expense, savings and savings rate for one month
// @Summary Monthly summary
// @Tags Analytics
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} models.PeriodSummary
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetMonthlySummary(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var query dto.MonthQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	summary, err := h.analyticsService.GetMonthlySummary(c.Request().Context(), ownerID, query.Month, query.Year)
	if err != nil {
		return SendServiceError(c, err)
	}

	h.metrics.IncrementCounter("analytics.summary", nil)
	setPrivateCache(c)
	return c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown returns per-category totals and shares for one month
// @Summary Category breakdown
// @Tags Analytics
// @Produce json
// @Param X-Owner-ID header string true "Owner ID (UUID)"
// @Param kind query string true "Record kind" Enums(income, expense)
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param limit query int false "Keep the top N categories and fold the rest into Others"
// @Success 200 {object} models.CategoryBreakdown
// @Router /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	query := dto.CategoryBreakdownQuery{Limit: defaultBreakdownLimit}
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	kind := strings.ToLower(strings.TrimSpace(query.Kind))
	breakdown, err := h.analyticsService.GetCategoryBreakdown(
		c.Request().Context(), ownerID, kind, query.Month, query.Year, query.Limit,
	)
	if err != nil {
		return SendServiceError(c, err)
	}

	h.metrics.IncrementCounter("analytics.categories", map[string]string{"kind": kind})
	setPrivateCache(c)
	return c.JSON(http.StatusOK, breakdown)
}

// setPrivateCache overrides the default no-store header for aggregate views
func setPrivateCache(c echo.Context) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(analyticsCacheTTL.Seconds())))
}
