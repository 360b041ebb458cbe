package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockRenderer is a rendering.Renderer whose results are scripted per test.
type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	args := m.Called(ctx, component)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockRenderer) RenderPage(c echo.Context, status int, component any) error {
	args := m.Called(c, status, component)
	return args.Error(0)
}

func TestRenderPost_RendererFailure(t *testing.T) {
	renderer := new(mockRenderer)
	renderer.On("RenderPage", mock.Anything, http.StatusOK, mock.Anything).Return(errors.New("writer closed"))

	e := echo.New()
	e.JSONSerializer = handlers.JSONSerializer{}
	e.Validator = handlers.NewValidator()
	e.POST("/api/render", handlers.NewRenderHandler(renderer, nil).RenderPost)

	rec := do(e, postJSON("/api/render", `{"messages": [{"author": "Alyx"}]}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	renderer.AssertExpectations(t)
}

func TestStoryGet_DoesNotRenderUnknownStory(t *testing.T) {
	renderer := new(mockRenderer)

	e := echo.New()
	e.GET("/stories/:name", handlers.NewGalleryHandler(renderer, nil, "").StoryGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stories/Nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	renderer.AssertNotCalled(t, "RenderPage", mock.Anything, mock.Anything, mock.Anything)
}
