package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-analytics/internal/errors"
	"finance-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is satisfied by *database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       HealthChecker
	currency services.CurrencyServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, currency services.CurrencyServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, currency: currency}
}

// HealthCheck reports database connectivity and exchange rate availability.
// Missing rates degrade the service but do not fail the check.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,rates=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	status, rates := "healthy", "available"
	if _, err := h.currency.Snapshot(ctx); err != nil {
		status, rates = "degraded", "unavailable"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": status,
		"rates":  rates,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
