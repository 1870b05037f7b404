package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/metrics"
	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth; a request
// with no resolved user is treated as role-less and rejected.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			role := ""
			if user != nil {
				role = user.Role
			}
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
