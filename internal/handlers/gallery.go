package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/rendering"
	"github.com/nfrund/mockcord/internal/stories"
	"github.com/nfrund/mockcord/internal/view"
	"github.com/nfrund/mockcord/web/src/templates/layouts"
	"github.com/nfrund/mockcord/web/src/templates/pages"
)

// GalleryHandler serves the story catalogue.
type GalleryHandler struct {
	renderer      rendering.Renderer
	opts          *discord.Options
	stylesheetURL string
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(r rendering.Renderer, opts *discord.Options, stylesheetURL string) *GalleryHandler {
	return &GalleryHandler{renderer: r, opts: opts, stylesheetURL: stylesheetURL}
}

// GalleryGet renders every story on one page.
func (h *GalleryHandler) GalleryGet(c echo.Context) error {
	content := view.Fragment(pages.Gallery(stories.All(), h.opts))
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Gallery", h.stylesheetURL, content))
}

// StoryGet renders a single story. htmx requests get the bare fragment,
// everything else a full page.
func (h *GalleryHandler) StoryGet(c echo.Context) error {
	name := c.Param("name")
	s, ok := stories.Find(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "story not found: "+name)
	}

	content := view.Fragment(pages.StoryCard(s, h.opts))
	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, content)
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(s.Name, h.stylesheetURL, content))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
