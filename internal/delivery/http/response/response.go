// Package response writes the JSON bodies shared by every handler.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// JSON writes data as is; flow endpoints return their payloads unwrapped.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 with data.
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created writes a 201 with data.
func Created(c echo.Context, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// Text writes a text/plain body.
func Text(c echo.Context, statusCode int, body string) error {
	return c.String(statusCode, body)
}

// Error writes an error body.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
