package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"classboard/internal/config"
	apperrors "classboard/internal/errors"
	"classboard/internal/handler"
	"classboard/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *session.TokenService,
	store session.StoreInterface,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	// Secured routes (require a valid session cookie)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + session.CookieName,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.SessionID(auth)
		},
		// A missing cookie is an auth failure, not a malformed request
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
		},
	}), loadSession(store))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", authHandler.Me)
	secured.GET("/dashboard", dashboardHandler.Get)
	secured.POST("/sweep", dashboardHandler.Sweep)

	// Creation routes are not offered to students at all
	teacher := secured.Group("", requireTeacher())
	teacher.POST("/tasks", itemHandler.CreateTask)
	teacher.POST("/events", itemHandler.CreateEvent)
}

// loadSession resolves the cookie's session ID to the stored session record
// and places both in the request context.
func loadSession(store session.StoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := c.Get("user").(string)
			if !ok || sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			sess, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(handler.ContextKeySessionID, sid)
			c.Set(handler.ContextKeySession, sess)
			return next(c)
		}
	}
}

// requireTeacher gates creation routes on the session's role.
func requireTeacher() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := handler.SessionFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}
			if !sess.User.IsTeacher() {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrTeacherOnly)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
