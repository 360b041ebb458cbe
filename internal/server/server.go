package server

import (
	"errors"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/mockcord/internal/config"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/handlers"
	appmw "github.com/nfrund/mockcord/internal/middleware"
	"github.com/nfrund/mockcord/internal/rendering"
)

// Server holds the dependencies for the preview server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Options  *discord.Options
	renderer *rendering.UniversalRenderer
}

// New creates a Server with its middleware and routes registered. opts is
// shared read-only by every request.
func New(cfg *config.Config, opts *discord.Options) *Server {
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = handlers.JSONSerializer{}
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmw.Logger)
	e.Use(middleware.Recover())
	setupErrorHandling(e)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Options:  opts,
		renderer: renderer,
	}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling installs the central error handler. HTTP errors raised
// on purpose go to echo's default handler; anything else is logged with a
// stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			appmw.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
