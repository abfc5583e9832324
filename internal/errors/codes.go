package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Owner error codes (OWNER_*)
const (
	OwnerMissing       ErrorCode = "OWNER_001"
	OwnerInvalidFormat ErrorCode = "OWNER_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Currency error codes (CURRENCY_*)
const (
	CurrencyUnsupported      ErrorCode = "CURRENCY_001"
	CurrencyRatesUnavailable ErrorCode = "CURRENCY_002"
)

// Period error codes (PERIOD_*)
const (
	PeriodInvalidGranularity ErrorCode = "PERIOD_001"
	PeriodInvalidCount       ErrorCode = "PERIOD_002"
	PeriodInvalidMonth       ErrorCode = "PERIOD_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound         ErrorCode = "BUDGET_001"
	BudgetAlreadyExists    ErrorCode = "BUDGET_002"
	BudgetInvalidLimit     ErrorCode = "BUDGET_003"
	BudgetInvalidThreshold ErrorCode = "BUDGET_004"
)

// Record error codes (RECORD_*)
const (
	RecordNotFound      ErrorCode = "RECORD_001"
	RecordInvalidKind   ErrorCode = "RECORD_002"
	RecordInvalidAmount ErrorCode = "RECORD_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Owner errors
	OwnerMissing:       "Owner identity is required",
	OwnerInvalidFormat: "Owner identity must be a valid UUID",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Currency errors
	CurrencyUnsupported:      "Currency code is not supported",
	CurrencyRatesUnavailable: "Exchange rates are temporarily unavailable",

	// Period errors
	PeriodInvalidGranularity: "Granularity must be weekly, monthly or yearly",
	PeriodInvalidCount:       "Period count must be positive",
	PeriodInvalidMonth:       "Month must be between 1 and 12",

	// Budget errors
	BudgetNotFound:         "Budget not found",
	BudgetAlreadyExists:    "A budget already exists for this category and month",
	BudgetInvalidLimit:     "Budget limit must be positive",
	BudgetInvalidThreshold: "Thresholds must be between 1 and 1000 percent",

	// Record errors
	RecordNotFound:      "Transaction not found",
	RecordInvalidKind:   "Transaction kind must be income or expense",
	RecordInvalidAmount: "Transaction amount must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
