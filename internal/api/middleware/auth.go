package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskquest/task-manager/internal/api/metrics"
	"github.com/taskquest/task-manager/internal/core/ports"
)

// UserIDKey is the echo context key under which Auth stores the verified
// caller identity. Downstream handlers read identity from here and nowhere
// else; a client-supplied user id in the payload is never trusted.
const UserIDKey = "user_id"

// Auth verifies the bearer token and injects the resolved user id into the
// request context. Requests without a valid token fail closed with 401.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.VerifyToken(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, userID)

			return next(c)
		}
	}
}
