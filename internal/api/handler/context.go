package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/middleware"
	"github.com/purplemerit/user-management-system/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware and fast-fails
// before any service call: a missing user means the route was wired without
// the middleware, which is a server bug surfaced as 401 rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, nil
}
