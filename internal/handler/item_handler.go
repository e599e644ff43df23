package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"classboard/internal/errors"
	"classboard/internal/model"
	"classboard/internal/service"
)

// datetimeLocalLayout is what an HTML datetime-local input submits.
const datetimeLocalLayout = "2006-01-02T15:04"

// ItemHandler handles task and event creation.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"required"`
	Audience    string `json:"audience" validate:"required"`
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Audience    string `json:"audience" validate:"required"`
}

// CreateTask godoc
// @Summary Create a task (teachers only)
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *ItemHandler) CreateTask(c echo.Context) error {
	sess, ok := SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dueDate, err := parseInstant(req.DueDate)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.itemService.CreateTask(c.Request().Context(), sess, req.Title, req.Description, dueDate, model.Audience(req.Audience)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "task created",
	})
}

// CreateEvent godoc
// @Summary Create an event (teachers only)
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /events [post]
func (h *ItemHandler) CreateEvent(c echo.Context) error {
	sess, ok := SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := parseInstant(req.StartTime)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	end, err := parseInstant(req.EndTime)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.itemService.CreateEvent(c.Request().Context(), sess, req.Title, req.Description, start, end, model.Audience(req.Audience)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "event created",
	})
}

// parseInstant resolves a submitted timestamp to an absolute instant. RFC 3339
// values pass through; the zone-less datetime-local shape is resolved in the
// server's local zone. Naive strings never reach the wire.
func parseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(datetimeLocalLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, errors.ErrInvalidTimestamp
}
