package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/stories"
)

// HealthGet reports that the server is up.
func HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Stories: len(stories.All())})
}
