package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes: missing
// objects to 404, bad input to 400, state conflicts to 409, everything
// else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrSessionAlreadyActive),
		errors.Is(err, commands.ErrNoActiveSession),
		errors.Is(err, session.ErrBatchIncomplete):
		code = http.StatusConflict
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
