package server

import (
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/mockcord/internal/handlers"
	appmw "github.com/nfrund/mockcord/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	gallery := handlers.NewGalleryHandler(s.renderer, s.Options, s.Cfg.StylesheetURL)
	playground := handlers.NewPlaygroundHandler(s.renderer, s.Options, s.Cfg.StylesheetURL)
	api := handlers.NewRenderHandler(s.renderer, s.Options)

	rateLimiter := appmw.RateLimiter(s.Cfg.RateLimit)
	bodyLimit := middleware.BodyLimit(s.Cfg.MaxBody)

	s.E.GET("/", gallery.GalleryGet)
	s.E.GET("/stories/:name", gallery.StoryGet)

	s.E.GET("/playground", playground.PlaygroundGet)
	s.E.POST("/playground/render", playground.RenderPost, bodyLimit, rateLimiter)

	s.E.POST("/api/render", api.RenderPost, bodyLimit, rateLimiter)

	s.E.GET("/health", handlers.HealthGet)
}
