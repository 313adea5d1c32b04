// Package errors defines application errors that carry an HTTP status and
// a stable business code alongside the user-facing message.
package errors

import (
	"net/http"

	"bakehouse/internal/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements AppError.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrSessionNotFound covers unknown and expired order sessions alike.
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Order session not found or expired.",
		"",
	)

	// ErrMenuNotFound is returned for an unknown menu id.
	ErrMenuNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_NOT_FOUND",
		"That menu does not exist.",
		"",
	)

	// ErrLineNotFound is returned for an unknown cart line id.
	ErrLineNotFound = NewBaseError(
		http.StatusNotFound,
		"LINE_NOT_FOUND",
		"That cart line does not exist.",
		"",
	)

	// ErrCartConfirmationRequired blocks a menu switch while the cart holds
	// items until the caller confirms the cart will be cleared.
	ErrCartConfirmationRequired = NewBaseError(
		http.StatusConflict,
		"CART_CONFIRMATION_REQUIRED",
		"Your cart will be cleared if you switch menus.",
		"",
	)

	// ErrMenuNotOrderable rejects cart mutations on a menu that is not
	// currently orderable online (view-only, request-only, out of season).
	ErrMenuNotOrderable = NewBaseError(
		http.StatusConflict,
		"MENU_NOT_ORDERABLE",
		"This menu is not available for online ordering right now.",
		"",
	)

	// ErrInvalidInput is a generic bad-request error for malformed input.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The request input is invalid.",
		"",
	)

	// ErrMailDelivery signals that the outbound email relay rejected or
	// failed the submission call.
	ErrMailDelivery = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Something went wrong while sending your request. Please try again.",
		"",
	)
)
