package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "canpestre/internal/delivery/context"
	"canpestre/internal/delivery/http/response"
	domainerrors "canpestre/internal/domain/errors"

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

	requestID := deliverycontext.GetRequestID(c)

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:      appErr.ErrorCode(),
				Details:   appErr.Details(),
				RequestID: requestID,
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			_ = c.JSON(http.StatusNotFound, response.Response{
				Success: false,
				Code:    http.StatusNotFound,
				Message: domainerrors.ErrNotFound.Message(),
				Error: &response.ErrorInfo{
					Code:      domainerrors.ErrNotFound.ErrorCode(),
					Details:   c.Request().URL.Path,
					RequestID: requestID,
				},
			})

			return
		}

		message := fmt.Sprintf("%v", httpErr.Message)
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:      "HTTP_ERROR",
				Details:   message,
				RequestID: requestID,
			},
		})

		return
	}

	// Default to internal error, log and return a generic message. The
	// request-scoped logger already carries the request id when the
	// middleware attached one.
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &response.ErrorInfo{
			Code:      domainerrors.ErrInternalError.ErrorCode(),
			Details:   err.Error(),
			RequestID: requestID,
		},
	})
}
