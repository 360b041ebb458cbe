package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/document"
	"github.com/nfrund/mockcord/internal/middleware"
	"github.com/nfrund/mockcord/internal/rendering"
	"github.com/nfrund/mockcord/internal/view"
	"github.com/nfrund/mockcord/web/src/templates/layouts"
	"github.com/nfrund/mockcord/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// PlaygroundHandler serves the live JSON editor.
type PlaygroundHandler struct {
	renderer      rendering.Renderer
	opts          *discord.Options
	stylesheetURL string
}

// NewPlaygroundHandler creates a new PlaygroundHandler.
func NewPlaygroundHandler(r rendering.Renderer, opts *discord.Options, stylesheetURL string) *PlaygroundHandler {
	return &PlaygroundHandler{renderer: r, opts: opts, stylesheetURL: stylesheetURL}
}

// PlaygroundGet renders the editor preloaded with the sample conversation.
func (h *PlaygroundHandler) PlaygroundGet(c echo.Context) error {
	content := view.Fragment(pages.Playground(document.Sample, h.preview(c, document.Sample)))
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Playground", h.stylesheetURL, content))
}

// RenderPost re-renders the posted document. Problems with the document are
// shown in the preview, so the response is 200 either way.
func (h *PlaygroundHandler) RenderPost(c echo.Context) error {
	var req PlaygroundRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return h.renderer.RenderPage(c, http.StatusOK, view.Fragment(pages.RenderError("The document is empty.")))
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.Fragment(h.preview(c, req.Document)))
}

func (h *PlaygroundHandler) preview(c echo.Context, src string) g.Node {
	logger := middleware.FromContext(c.Request().Context())

	conv, err := document.Decode([]byte(src))
	if err != nil {
		logger.Info("Playground document rejected", "error", err)
		return pages.RenderError(err.Error())
	}
	node, err := conv.Render(h.opts)
	if err != nil {
		logger.Info("Playground document could not be rendered", "error", err)
		return pages.RenderError(err.Error())
	}
	return node
}
