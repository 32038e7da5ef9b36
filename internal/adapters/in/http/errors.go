package http

import (
	"errors"
	"net/http"

	"workorders/internal/adapters/in/http/servers"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status. Anything unrecognised is
// an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrIllegalTransition):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNoOp), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes err with its mapped status. Internal errors are logged
// and hidden behind fallback.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
		message = fallback
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
