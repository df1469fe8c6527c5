package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careconnect/appointment-system/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware did not run on this
// route, which is a wiring error surfaced as 401 rather than a panic.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
