// Package errors provides structured error types for the Meridian bring-up
// path. All errors include a category, code, and message for consistent
// handling across components.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by component.
type ErrorCategory string

const (
	ErrCategoryConfig     ErrorCategory = "CONFIG"
	ErrCategorySchema     ErrorCategory = "SCHEMA"
	ErrCategoryValidation ErrorCategory = "VALIDATION"
	ErrCategoryInternal   ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Config codes
	CodeUnreadableFile    = "UNREADABLE_FILE"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeMissingField      = "MISSING_FIELD"
	CodeInvalidValue      = "INVALID_VALUE"

	// Schema codes
	CodeColumnNotFound     = "COLUMN_NOT_FOUND"
	CodeColumnTypeMismatch = "COLUMN_TYPE_MISMATCH"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// MeridianError is the structured error type used on the bring-up path.
type MeridianError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Cause    error
}

// Error returns a formatted error string.
func (e *MeridianError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *MeridianError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *MeridianError) Is(target error) bool {
	var t *MeridianError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new MeridianError.
func New(category ErrorCategory, code, message string) *MeridianError {
	return &MeridianError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Wrap creates a new MeridianError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *MeridianError {
	return &MeridianError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a MeridianError.
func GetCategory(err error) ErrorCategory {
	var me *MeridianError
	if errors.As(err, &me) {
		return me.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a MeridianError.
func GetCode(err error) string {
	var me *MeridianError
	if errors.As(err, &me) {
		return me.Code
	}
	return ""
}

// Convenience constructors for common errors.

func NewConfigError(code, message string) *MeridianError {
	return New(ErrCategoryConfig, code, message)
}

func WrapConfigError(code, message string, cause error) *MeridianError {
	return Wrap(ErrCategoryConfig, code, message, cause)
}

func NewSchemaError(code, message string) *MeridianError {
	return New(ErrCategorySchema, code, message)
}

func NewInternalError(message string, cause error) *MeridianError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
