package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CourierScope restricts routes carrying a :courier_id path parameter
// to the authenticated courier. A courier can only operate on their own
// resources.
func CourierScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claimed, _ := c.Get("courier_id").(string)
			if claimed == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if param := c.Param("courier_id"); param != "" && param != claimed {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
