package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/document"
	"github.com/nfrund/mockcord/internal/middleware"
	"github.com/nfrund/mockcord/internal/rendering"
	"github.com/nfrund/mockcord/internal/view"
)

// RenderHandler is the JSON render API.
type RenderHandler struct {
	renderer rendering.Renderer
	opts     *discord.Options
}

// NewRenderHandler creates a new RenderHandler.
func NewRenderHandler(r rendering.Renderer, opts *discord.Options) *RenderHandler {
	return &RenderHandler{renderer: r, opts: opts}
}

// RenderPost turns a JSON conversation into its HTML fragment.
func (h *RenderHandler) RenderPost(c echo.Context) error {
	var conv document.Conversation
	if err := c.Bind(&conv); err != nil {
		return err
	}
	if err := c.Validate(&conv); err != nil {
		return renderFailure(err)
	}

	node, err := conv.Render(h.opts)
	if err != nil {
		return renderFailure(err)
	}

	middleware.FromContext(c.Request().Context()).Debug("Rendered conversation", "messages", len(conv.Messages))
	return h.renderer.RenderPage(c, http.StatusOK, view.Fragment(node))
}
