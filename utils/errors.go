package utils

import (
	"fmt"
	"net/http"
)

// AppError represents an application error carrying the HTTP status it
// should surface as. The wrapped error is logged, never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// InternalError creates a 500 Internal Server Error
func InternalError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}
