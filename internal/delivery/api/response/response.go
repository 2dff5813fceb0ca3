package response

import (
	"net/http"

	deliverycontext "portfolio/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the flat error body every failing route returns.
type ErrorResponse struct {
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Stack     string `json:"stack,omitempty"` // Only outside production
}

// MessageResponse is the body of operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {message} acknowledgement.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes the flat error body. stack is omitted when empty.
func Error(c echo.Context, statusCode int, errorCode, message, stack string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
		Stack:     stack,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, stack string) error {
	return Error(c, http.StatusInternalServerError, errorCode, "Internal server error", stack)
}
