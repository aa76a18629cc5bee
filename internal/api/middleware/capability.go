package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// RequireCapability enforces that the authenticated session's role grants the
// capability. Services re-check on mutation; this keeps unauthorized requests
// from reaching them at all.
func RequireCapability(capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !session.Role.HasCapability(capability) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
