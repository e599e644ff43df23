package handler

import (
	"github.com/labstack/echo/v4"

	"classboard/internal/model"
)

// Context keys populated by the session middleware.
const (
	// ContextKeySession holds the resolved *model.Session.
	ContextKeySession = "session"
	// ContextKeySessionID holds the session ID from the cookie token.
	ContextKeySessionID = "session_id"
)

// SessionFromContext returns the authenticated session placed in the echo
// context by the session middleware.
func SessionFromContext(c echo.Context) (*model.Session, bool) {
	sess, ok := c.Get(ContextKeySession).(*model.Session)
	return sess, ok
}

// SessionIDFromContext returns the session ID from the echo context.
func SessionIDFromContext(c echo.Context) (string, bool) {
	sid, ok := c.Get(ContextKeySessionID).(string)
	return sid, ok
}
