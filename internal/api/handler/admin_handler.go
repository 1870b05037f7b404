package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/user-management-system/internal/api/metrics"
	"github.com/purplemerit/user-management-system/internal/core/domain"
	"github.com/purplemerit/user-management-system/internal/core/ports"
)

// AdminHandler handles the admin console endpoints.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers returns one page of users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (default 1)"
// @Success      200   {object}  envelope
// @Failure      401   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]interface{}
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	// Absent or unparseable page falls back to 1, never an error.
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.admin.ListUsers(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", result)
}

// Activate sets a user's status to active.
//
// @Summary      Activate a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/admin/users/{id}/activate [patch]
func (h *AdminHandler) Activate(c echo.Context) error {
	user, err := h.admin.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(domain.StatusActive).Inc()
	return respond(c, http.StatusOK, "User activated successfully", user)
}

// Deactivate sets a user's status to inactive.
//
// @Summary      Deactivate a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/admin/users/{id}/deactivate [patch]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	user, err := h.admin.Deactivate(c.Request().Context(), actor.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(domain.StatusInactive).Inc()
	return respond(c, http.StatusOK, "User deactivated successfully", user)
}
