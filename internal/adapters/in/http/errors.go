package http

import (
	"errors"
	"net/http"

	"servicerequest/internal/generated/servers"
	"servicerequest/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps a use case error to the HTTP status returned to the caller.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrAlreadyClosed),
		errors.Is(err, errs.ErrAlreadyApproved),
		errors.Is(err, errs.ErrWrongPredecessorState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrComplianceViolation),
		errors.Is(err, errs.ErrApproverNotAuthorized):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = "internal error"
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
