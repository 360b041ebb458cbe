package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/middleware"
	g "maragu.dev/gomponents"
)

// ErrUnsupportedComponent is returned for values that are neither a
// templ.Component nor a gomponents.Node.
var ErrUnsupportedComponent = errors.New("unsupported component type")

// Renderer renders templ components and gomponents nodes alike.
type Renderer interface {
	// RenderComponent renders a component to bytes, for the CLI and for tests.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a component as a complete HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer is the Renderer used by the preview server and the CLI.
// It also satisfies echo.Renderer so handlers may call c.Render.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case g.Node:
		return c.Render(w)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedComponent, component)
	}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The component is rendered into a buffer
// first, so a failing component still lets the error handler pick the status.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	ctx := c.Request().Context()
	body, err := r.RenderComponent(ctx, component)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component is passed as data.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}

// OK renders component with status 200.
func OK(r Renderer, c echo.Context, component any) error {
	return r.RenderPage(c, http.StatusOK, component)
}
