package handler

import "github.com/labstack/echo/v4"

// response is the canonical success envelope returned by all handlers.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{
		Success: true,
		Message: message,
		Code:    status,
		Data:    data,
	})
}
