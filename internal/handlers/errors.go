package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/mockcord/internal/discord"
	"github.com/nfrund/mockcord/internal/document"
)

// renderFailure maps errors from validating or building a document to HTTP
// errors: misplaced slot children are 422, other document problems 400.
// Anything else is left for the central error handler.
func renderFailure(err error) error {
	var (
		slotErr    *discord.SlotError
		validation validator.ValidationErrors
	)
	switch {
	case errors.As(err, &slotErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    CodeInvalidSlot,
			Message: err.Error(),
		}).SetInternal(err)
	case errors.As(err, &validation), errors.Is(err, document.ErrInvalidDocument):
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{
			Code:    CodeInvalidDocument,
			Message: err.Error(),
		}).SetInternal(err)
	default:
		return err
	}
}
