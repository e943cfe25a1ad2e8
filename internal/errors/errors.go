// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrConfigInvalid = errors.New("invalid configuration")
	ErrInputAborted  = errors.New("input aborted")
	ErrInputClosed   = errors.New("input stream closed")
)

// UnknownVitalError reports a range-table lookup for a vital that is not
// registered. It always indicates an integration defect, never bad user
// input.
type UnknownVitalError struct {
	Name string
}

func (e *UnknownVitalError) Error() string {
	return fmt.Sprintf("unknown vital: %q is not registered in the range table", e.Name)
}

// NewUnknownVitalError creates a new UnknownVitalError.
func NewUnknownVitalError(name string) *UnknownVitalError {
	return &UnknownVitalError{Name: name}
}

// MissingFieldError reports a reading set that lacks a required field.
// The input collaborator is responsible for guaranteeing complete reading
// sets, so this too is an integration defect.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: reading set has no value for %q", e.Field)
}

// NewMissingFieldError creates a new MissingFieldError.
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
