// Package errors defines the application error taxonomy shared by the use
// cases and the HTTP delivery.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
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
	// Identity-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid identity header",
		"",
	)

	ErrInvalidAdminCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ADMIN_CREDENTIALS",
		"Invalid admin credentials",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User profile not found",
		"",
	)

	// Item-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusConflict,
		"ITEM_UNAVAILABLE",
		"Item is not available for reservation",
		"",
	)

	ErrSelfReservation = NewBaseError(
		http.StatusConflict,
		"SELF_RESERVATION",
		"Cannot reserve your own item",
		"",
	)

	ErrAlreadyLiked = NewBaseError(
		http.StatusConflict,
		"ALREADY_LIKED",
		"Item already liked",
		"",
	)

	ErrNotLiked = NewBaseError(
		http.StatusConflict,
		"NOT_LIKED",
		"Item not liked",
		"",
	)

	ErrAlreadyFavorited = NewBaseError(
		http.StatusConflict,
		"ALREADY_FAVORITED",
		"Item already in favorites",
		"",
	)

	ErrNotFavorited = NewBaseError(
		http.StatusConflict,
		"NOT_FAVORITED",
		"Item not in favorites",
		"",
	)

	// Reservation-related errors
	ErrReservationNotFound = NewBaseError(
		http.StatusNotFound,
		"RESERVATION_NOT_FOUND",
		"Reservation not found",
		"",
	)

	ErrInvalidReservationStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESERVATION_STATUS",
		"Reservation status must be approved or declined",
		"",
	)

	// Tracking-related errors
	ErrTrackingNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACKING_NOT_FOUND",
		"Tracking ID not found",
		"",
	)

	ErrInvalidTrackingStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRACKING_STATUS",
		"Invalid tracking status",
		"",
	)

	// Chat-related errors
	ErrChatNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"Chat not found",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Report-related errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"Invalid file type. Only images are allowed.",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreExecuteError represents a document store execution error,
// implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a document-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Document store execution failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}
