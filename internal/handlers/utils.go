package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OwnerIDContextKey is where the owner middleware stores the caller identity
const OwnerIDContextKey = "owner_id"

// ErrUnauthorized is returned when owner context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getOwnerIDFromContext extracts the owner ID set by the owner middleware
func getOwnerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(OwnerIDContextKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return ownerID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// parseDateParam accepts YYYY-MM-DD or RFC 3339 and always returns UTC
func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD or RFC 3339", name)
	}
	t = t.UTC()
	return &t, nil
}

// validationDetails flattens validator errors into "field: tag" details
func validationDetails(err error) []string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return details
}
