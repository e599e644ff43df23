package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"classboard/internal/errors"
	"classboard/internal/service"
)

// DashboardHandler serves the composed dashboard and the sweep trigger.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// @Summary Load the user's tasks, events, notifications and calendar
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	sess, ok := SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	dash, err := h.dashboardService.Load(c.Request().Context(), sess)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dash)
}

// Sweep godoc
// @Summary Trigger the deadline-notification sweep and reload
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /sweep [post]
func (h *DashboardHandler) Sweep(c echo.Context) error {
	sess, ok := SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	dash, err := h.dashboardService.RunSweep(c.Request().Context(), sess)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dash)
}
