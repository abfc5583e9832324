package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"finance-analytics/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("granularity", validateGranularity)
	_ = v.RegisterValidation("record_kind", validateRecordKind)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("thresholds", validateThresholds)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = fld.Tag.Get("query")
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a request payload
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCurrencyCode checks the shape of an ISO 4217 code. Whether the code
// is actually supported is decided by the currency service.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateGranularity(fl validator.FieldLevel) bool {
	_, err := models.ParseGranularity(fl.Field().String())
	return err == nil
}

func validateRecordKind(fl validator.FieldLevel) bool {
	kind := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return kind == models.RecordKindIncome || kind == models.RecordKindExpense
}

// validatePositiveAmount accepts decimal strings greater than zero with at
// most 2 decimal places. Numeric kinds only need to be positive.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return amount.IsPositive() && amount.Equal(amount.Round(2))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

func validateThresholds(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		t := field.Index(i).Int()
		if t < 1 || t > 1000 {
			return false
		}
	}
	return true
}
