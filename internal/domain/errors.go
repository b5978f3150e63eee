package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		"UNAUTHORIZED",
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service, operation string, err error) *AppError {
	return NewAppError(
		"EXTERNAL_SERVICE_ERROR",
		fmt.Sprintf("External service '%s' operation '%s' failed", service, operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NewMalformedSnapshotError creates an error for a game snapshot that violates its invariants
func NewMalformedSnapshotError(details string) *AppError {
	err := NewAppError(
		ErrCodeMalformedSnapshot,
		"Malformed game snapshot",
		http.StatusBadGateway,
		nil,
	)
	err.Details = details
	return err
}

// NewMalformedPayloadError creates an error for a service response that fails validation
func NewMalformedPayloadError(resource, details string) *AppError {
	err := NewAppError(
		ErrCodeMalformedPayload,
		fmt.Sprintf("Malformed %s payload", resource),
		http.StatusBadGateway,
		nil,
	)
	err.Details = details
	return err
}

// StatusOf returns the HTTP status carried by err, or 500
func StatusOf(err error) int {
	if appErr, ok := IsAppError(err); ok && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Error codes for different categories of errors
const (
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"

	ErrCodeUserNotFound = "USER_NOT_FOUND"

	ErrCodeSnapshotUnavailable = "SNAPSHOT_UNAVAILABLE"
	ErrCodeMalformedSnapshot   = "MALFORMED_SNAPSHOT"
	ErrCodeMalformedPayload    = "MALFORMED_PAYLOAD"

	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeInvalidRange  = "INVALID_RANGE"

	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
	ErrCodeGameServerError    = "GAME_SERVER_ERROR"
	ErrCodeUserServiceError   = "USER_SERVICE_ERROR"
)
