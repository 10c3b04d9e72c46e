package model

import (
	"github.com/labstack/echo/v4"
)

// FieldError describes a single request-body field constraint violation.
//
// swagger:model
type FieldError struct {
	// The name of the field that failed validation
	Field string `json:"field"`

	// A brief description of the failure
	Message string `json:"message"`
}

// SuccessResponse is the envelope for every successful response.
//
// swagger:model
type SuccessResponse struct {
	// The status of the request
	Success bool `json:"success"`

	// The result of the request
	Result interface{} `json:"result,omitempty"`
}

// ErrorResponse is the envelope for every failed response.
//
// swagger:model
type ErrorResponse struct {
	// The status of the request
	Success bool `json:"success"`

	// A brief description of the failure
	Message string `json:"message"`

	// The individual field failures for validation errors
	Errors []FieldError `json:"errors,omitempty"`
}

// Success sends a response with a result body.
func Success(ctx echo.Context, result interface{}, status int) error {
	return ctx.JSON(status, SuccessResponse{Success: true, Result: result})
}

// Error sends a failure response.
func Error(ctx echo.Context, message string, status int) error {
	return ctx.JSON(status, ErrorResponse{Success: false, Message: message})
}

// ErrorFields sends a failure response carrying per-field validation failures.
func ErrorFields(ctx echo.Context, message string, fields []FieldError, status int) error {
	return ctx.JSON(status, ErrorResponse{Success: false, Message: message, Errors: fields})
}
