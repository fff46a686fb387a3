package upsert

import (
	"errors"
	"fmt"
)

// ConfigurationError is the only error kind returned by
// ContextBuilder.Build. It names the required field that was missing or
// empty so the caller can correct exactly that field and retry.
type ConfigurationError struct {
	// Field is the stable identifier of the violated field
	Field string

	// Message is the human-readable description of the violation
	Message string
}

// Error returns a formatted error string.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("upsert context: %s", e.Message)
}

// Is reports whether the target is a ConfigurationError for the same field.
func (e *ConfigurationError) Is(target error) bool {
	var t *ConfigurationError
	if errors.As(target, &t) {
		return e.Field == t.Field
	}
	return false
}

// newMissingFieldError builds the error for a missing required field.
func newMissingFieldError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// IsConfigurationError reports whether err (or its chain) is a
// ConfigurationError, returning it when so.
func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
