// Package middleware holds HTTP-specific echo middlewares.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "nearbuy/internal/delivery/context"
	domainerrors "nearbuy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

	meta := &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), domainerrors.ErrorResponse{
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Message: appErr.Message(),
			},
			Meta: meta,
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}

		_ = c.JSON(httpErr.Code, domainerrors.ErrorResponse{
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Message: message,
			},
			Meta: meta,
		})

		return
	}

	// Anything else that escapes the handlers is an upstream read or write
	// that failed; the catalog cannot be served from partial data.
	m.logger.Error("Data source failure",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	unavailable := domainerrors.ErrDataSourceUnavailable
	_ = c.JSON(unavailable.HTTPCode(), domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    unavailable.ErrorCode(),
			Message: unavailable.Message(),
		},
		Meta: meta,
	})
}
