// Package errors provides application-level error types and utilities.
// It defines common error types like validation, not found, conflict and
// rule violation errors, each mapped to a process exit code.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeConflict      ErrorType = "conflict"
	ErrorTypeRuleViolation ErrorType = "rule_violation"
	ErrorTypeInternal      ErrorType = "internal_error"
)

// Exit codes returned by the command line for each error type.
const (
	ExitCodeInternal      = 1
	ExitCodeValidation    = 2
	ExitCodeNotFound      = 3
	ExitCodeConflict      = 4
	ExitCodeRuleViolation = 5
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause so errors.Is matches domain sentinels.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error and uses its text as details
// when none were given.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	if e.Details == "" && cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, ExitCodeValidation, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, ExitCodeNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, ExitCodeConflict, message, details)
}

// NewRuleViolationError creates an error for a business rule that refused
// the operation.
func NewRuleViolationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRuleViolation, ExitCodeRuleViolation, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, ExitCodeInternal, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsRuleViolationError checks if the error is a rule violation error
func IsRuleViolationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeRuleViolation
}

// ExitCode returns the process exit code for err; 0 for nil and
// ExitCodeInternal for errors that are not AppErrors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ExitCodeInternal
}
