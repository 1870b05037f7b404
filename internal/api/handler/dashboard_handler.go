package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the role-gated landing endpoints consumed by the
// SPA after login. They carry no business logic of their own; the auth and
// role gates in front of them do all the work.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardData struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// User handles GET /api/dashboard/user.
func (h *DashboardHandler) User(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", dashboardData{Message: "Welcome to User Dashboard", User: user})
}

// Admin handles GET /api/dashboard/admin.
func (h *DashboardHandler) Admin(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", dashboardData{Message: "Welcome to Admin Dashboard", User: user})
}
