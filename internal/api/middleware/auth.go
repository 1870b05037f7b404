package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/metrics"
	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// UserContextKey is where the auth middleware stores the resolved user.
const UserContextKey = "user"

// TokenVerifier is the slice of the token service the gate needs.
type TokenVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// UserLoader is the slice of the user repository the gate needs.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth validates the bearer token, loads the referenced user and injects it
// into the request context. The account status is re-checked on every request
// rather than trusted from the token, so deactivation takes effect on the
// target's next call.
//
// A valid token whose user no longer exists yields 404, matching the behavior
// clients already depend on.
func Auth(tokens TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
			}

			userID, _, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if errors.Is(err, domain.ErrUserNotFound) {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusNotFound, "No user found with this id")
			}
			if err != nil {
				return err
			}

			if !user.IsActive() {
				metrics.AuthRejectionsTotal.WithLabelValues("inactive").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "User account is inactive")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
