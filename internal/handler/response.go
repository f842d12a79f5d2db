package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apierrors "portfolio/internal/errors"
)

// Response is the uniform success envelope.
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

func respond(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apierrors.BadRequest("Invalid ID")
	}
	return uint(id), nil
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}

// queryBool maps "true"/"false" to a pointer and anything else to nil, so
// an absent flag means no filtering.
func queryBool(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
