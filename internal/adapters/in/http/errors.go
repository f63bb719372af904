package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"
)

// statusFor maps the error taxonomy onto HTTP. More specific causes win: a
// transaction error caused by a conflict is a 409, not a 500.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrMissingAddress):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrGateway):
		return http.StatusBadGateway
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}

// respondError writes err as a servers.Error body.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	return c.JSON(status, servers.Error{
		Code:    status,
		Message: messageFor(status, err),
	})
}

// ErrorHandler renders errors that escape the handlers, such as routing misses,
// binding failures and rejected tokens, in the same shape as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if err := respondError(c, err); err != nil {
		logger.FromContext(c.Request().Context()).Error("failed to write error response", zap.Error(err))
	}
}
