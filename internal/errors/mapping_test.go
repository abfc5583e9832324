package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestCodeFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		known    bool
		status   int
	}{
		{"unsupported currency", models.ErrUnsupportedCurrency, CurrencyUnsupported, true, http.StatusBadRequest},
		{"wrapped granularity", fmt.Errorf("failed to build ranges: %w", models.ErrInvalidGranularity), PeriodInvalidGranularity, true, http.StatusBadRequest},
		{"invalid month", models.ErrInvalidMonth, PeriodInvalidMonth, true, http.StatusBadRequest},
		{"invalid threshold", models.ErrInvalidThreshold, BudgetInvalidThreshold, true, http.StatusBadRequest},
		{"bare invalid input", models.ErrInvalidInput, ValidationGeneral, true, http.StatusBadRequest},
		{"rates unavailable", fmt.Errorf("convert: %w", models.ErrRatesUnavailable), CurrencyRatesUnavailable, true, http.StatusServiceUnavailable},
		{"fetch failed", models.ErrRateFetchFailed, CurrencyRatesUnavailable, true, http.StatusServiceUnavailable},
		{"budget not found", repositories.ErrBudgetNotFound, BudgetNotFound, true, http.StatusNotFound},
		{"budget exists", repositories.ErrBudgetAlreadyExists, BudgetAlreadyExists, true, http.StatusConflict},
		{"record not found", repositories.ErrRecordNotFound, RecordNotFound, true, http.StatusNotFound},
		{"unknown", stderrors.New("connection reset"), SystemInternalError, false, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, known := CodeFor(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.known, known)
			assert.Equal(t, tc.status, GetHTTPStatus(code))
		})
	}
}

func TestCodeFor_Nil(t *testing.T) {
	code, known := CodeFor(nil)
	assert.Empty(t, code)
	assert.False(t, known)
}
