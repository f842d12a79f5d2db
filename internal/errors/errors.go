package errors

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// APIError is an error carrying the HTTP status it should surface with.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with an explicit status code.
func New(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// BadRequest builds a 400 error for user-correctable input problems.
func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, message)
}

// Unauthorized builds a 401 error for missing or invalid credentials.
func Unauthorized(message string) *APIError {
	return New(http.StatusUnauthorized, message)
}

// Forbidden builds a 403 error for authenticated but under-privileged callers.
func Forbidden(message string) *APIError {
	return New(http.StatusForbidden, message)
}

// NotFound builds a 404 error for absent resources.
func NotFound(message string) *APIError {
	return New(http.StatusNotFound, message)
}

// ErrorResponse is the uniform error response body.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Stack      string `json:"stack,omitempty"`
}

// HTTPErrorHandler returns the central echo error handler. Known error kinds
// map to their status code and message; anything else is masked to a generic
// 500. Outside production the 500 envelope carries a stack trace.
func HTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode := http.StatusInternalServerError
		message := "Internal Server Error"

		switch e := err.(type) {
		case *APIError:
			statusCode = e.StatusCode
			message = e.Message
		case *echo.HTTPError:
			statusCode = e.Code
			if m, ok := e.Message.(string); ok {
				message = m
			}
		}

		env := ErrorResponse{
			Success:    false,
			StatusCode: statusCode,
			Message:    message,
		}
		if statusCode == http.StatusInternalServerError {
			c.Logger().Error(err)
			if !production {
				env.Stack = err.Error() + "\n" + string(debug.Stack())
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
			return
		}
		_ = c.JSON(statusCode, env)
	}
}
