package http

import (
	"errors"
	"net/http"

	"reefer-backoffice/internal/domain/apperr"
	"reefer-backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error kind onto an HTTP status.
func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// responder writes use case errors; embedded by every API handler.
type responder struct{ log logger.Logger }

func newResponder(log logger.Logger) responder {
	if log == nil {
		log = logger.NewNop()
	}
	return responder{log: log}
}

// fail writes a use case error. Internal causes are logged, never echoed.
func (r responder) fail(c echo.Context, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal(err)
	}
	code := statusOf(ae.Kind)
	if code >= http.StatusInternalServerError {
		r.log.Error("request failed",
			"method", c.Request().Method, "path", c.Request().URL.Path, "route", c.Path(), "error", err)
		return c.JSON(code, ErrorResponse{Error: "internal error", Reason: "internal"})
	}

	resp := ErrorResponse{Error: ae.Message, Reason: ae.Reason}
	if ae.Field != "" {
		resp.Details = []FieldError{{Field: ae.Field, Message: ae.Message}}
	}
	return c.JSON(code, resp)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Reason:  "validation_failed",
		Details: ToFieldErrors(err),
	})
}
