package http

import (
	"errors"
	"log/slog"
	"net/http"

	"cargo/internal/api"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrForbidden is returned when an authenticated caller lacks the role an
// operation needs.
var ErrForbidden = errors.New("operation is not permitted for this role")

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAuthFailure):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a api.Error. Internal errors are logged and
// their text is not exposed.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, api.Error{
		Code:    status,
		Message: message,
	})
}

// errorHandler renders errors that escape handlers and middleware (unknown
// routes, bad path parameters, rejected tokens) in the same shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			_ = writeError(ctx, logger, err)
			return
		}

		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(httpErr.Code)
			return
		}
		_ = ctx.JSON(httpErr.Code, api.Error{
			Code:    httpErr.Code,
			Message: message,
		})
	}
}
