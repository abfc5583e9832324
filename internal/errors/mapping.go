package errors

import (
	stderrors "errors"

	"finance-analytics/internal/models"
	"finance-analytics/internal/repositories"
)

// domainCodes is checked in order; specific sentinels come before the
// error classes they wrap.
var domainCodes = []struct {
	target error
	code   ErrorCode
}{
	{models.ErrUnsupportedCurrency, CurrencyUnsupported},
	{models.ErrInvalidGranularity, PeriodInvalidGranularity},
	{models.ErrInvalidCount, PeriodInvalidCount},
	{models.ErrInvalidMonth, PeriodInvalidMonth},
	{models.ErrInvalidThreshold, BudgetInvalidThreshold},
	{models.ErrInvalidBudgetLimit, BudgetInvalidLimit},
	{models.ErrInvalidRecordKind, RecordInvalidKind},
	{models.ErrInvalidAmount, RecordInvalidAmount},
	{repositories.ErrBudgetNotFound, BudgetNotFound},
	{repositories.ErrBudgetAlreadyExists, BudgetAlreadyExists},
	{repositories.ErrRecordNotFound, RecordNotFound},
	{models.ErrInvalidInput, ValidationGeneral},
	{models.ErrUpstreamUnavailable, CurrencyRatesUnavailable},
}

// CodeFor classifies a service or repository error. The second return value
// is false when the error is not a known domain error and should be treated
// as an internal failure.
func CodeFor(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	for _, candidate := range domainCodes {
		if stderrors.Is(err, candidate.target) {
			return candidate.code, true
		}
	}
	return SystemInternalError, false
}
