package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/delivery/http/response"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		attrs := []any{
			slog.String("code", appErr.ErrorCode()),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		}
		if appErr.Details() != "" {
			attrs = append(attrs, slog.String("details", appErr.Details()))
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", append(attrs, slog.Any("error", err))...)
		} else {
			logger.Debug("Request rejected", attrs...)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
