package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTeacherOnly is returned when a non-teacher attempts to create items.
	ErrTeacherOnly = errors.New("only teachers can create tasks and events")
	// ErrSessionNotFound is returned when a session ID resolves to nothing.
	ErrSessionNotFound = errors.New("session not found or expired")
	// ErrBackendUnreachable is returned when the scheduling backend could not
	// be reached at all, as opposed to rejecting a request.
	ErrBackendUnreachable = errors.New("scheduling backend unreachable")
	// ErrInvalidTimestamp is returned when a submitted date cannot be resolved
	// to an instant.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Upstream rejections keep
// their human-readable detail; transport failures get a distinct code so the
// client can show a retry affordance instead of silently dropping the load.
func MapErrorToHTTP(err error) *HTTPError {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return NewHTTPError(upstream.Status, upstream.Detail, "UPSTREAM_REJECTED")
	}
	switch {
	case errors.Is(err, ErrTeacherOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TEACHER_ONLY")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "SESSION_EXPIRED")
	case errors.Is(err, ErrBackendUnreachable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "BACKEND_UNREACHABLE")
	case errors.Is(err, ErrInvalidTimestamp):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TIMESTAMP")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// UpstreamError carries a non-2xx response from the scheduling backend. The
// detail is surfaced verbatim to the user (e.g. credential rejections).
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return e.Detail
}
