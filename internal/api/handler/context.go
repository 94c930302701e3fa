package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskquest/task-manager/internal/api/middleware"
)

// ctxUserID extracts the caller identity injected by the Auth middleware
// and fails fast before any service call. A zero or missing id means the
// middleware did not run for this route; reject rather than fall through
// to an anonymous path.
func ctxUserID(c echo.Context) (int64, error) {
	userID, _ := c.Get(middleware.UserIDKey).(int64)
	if userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
