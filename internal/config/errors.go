package config

import "fmt"

// ValidationError reports a config value the demo will correct or ignore.
type ValidationError struct {
	Field   string // Dotted path, e.g. "slider.step"
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
