package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/seerahverse/account-dashboard/internal/api/metrics"
	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// SessionContextKey is where the auth middleware stores the refreshed session.
const SessionContextKey = "session"

// Auth validates the JWT, then routes the interaction through the guard's
// Touch so the idle timeout is enforced and the timer refreshed before any
// handler runs.
func Auth(jwtSecret string, guard ports.SessionGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["sid"].(string)
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			session, err := guard.Touch(c.Request().Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					metrics.SessionsExpiredTotal.Inc()
				}
				return err
			}

			c.Set(SessionContextKey, *session)
			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by Auth. The boolean is false
// when the middleware did not run on this route.
func SessionFromContext(c echo.Context) (domain.Session, bool) {
	session, ok := c.Get(SessionContextKey).(domain.Session)
	return session, ok
}
