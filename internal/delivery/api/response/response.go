// Package response renders the JSON bodies returned by the API.
package response

import (
	"net/http"

	deliverycontext "tube/internal/delivery/context"
	domainerrors "tube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "EMAIL_TAKEN"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// JSON writes a resource body as is, e.g. {"user": ...}.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error writes the error envelope tagged with the request id.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: clientDetails(statusCode, details),
		},
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// clientDetails drops details on server and auth failures, and drops empty ones.
func clientDetails(statusCode int, details any) any {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil
	}
	if statusCode >= http.StatusInternalServerError {
		return nil
	}
	if s, ok := details.(string); ok && s == "" {
		return nil
	}

	return details
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders client-facing domain errors. Internal failures are
// returned with a stack so the HTTP error handler logs them before answering.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
