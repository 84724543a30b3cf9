package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidRegion = errors.New("invalid region")
	ErrInvalidPOS    = errors.New("invalid part of speech")
	ErrValidation    = errors.New("validation error")
	ErrDatasetLoad   = errors.New("dataset load failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// DatasetLoadError reports that a backing table could not be loaded.
// It matches both ErrDatasetLoad and the underlying cause with errors.Is.
type DatasetLoadError struct {
	Table string
	Err   error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("load %s table: %v", e.Table, e.Err)
}

func (e *DatasetLoadError) Unwrap() []error { return []error{ErrDatasetLoad, e.Err} }

// NewDatasetLoadError wraps err as a load failure of the named table.
func NewDatasetLoadError(table string, err error) *DatasetLoadError {
	return &DatasetLoadError{Table: table, Err: err}
}
