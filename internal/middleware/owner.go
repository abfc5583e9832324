package middleware

import (
	"finance-analytics/internal/errors"
	"finance-analytics/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OwnerIDHeader carries the caller identity. Authentication happens upstream
// of this service; the header is trusted as-is.
const OwnerIDHeader = "X-Owner-ID"

// RequireOwner rejects requests without a well-formed owner identity and
// stores the parsed UUID under handlers.OwnerIDContextKey.
func RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(OwnerIDHeader)
			if raw == "" {
				return handlers.SendError(c, errors.OwnerMissing)
			}

			ownerID, err := uuid.Parse(raw)
			if err != nil || ownerID == uuid.Nil {
				return handlers.SendError(c, errors.OwnerInvalidFormat)
			}

			c.Set(handlers.OwnerIDContextKey, ownerID)
			return next(c)
		}
	}
}
