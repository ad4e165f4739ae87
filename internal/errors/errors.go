// Package errors provides consistent error types for the doselog CLI.
// It defines two main categories: ValidationError (fixable by the user)
// and StorageError (persistence issues the user cannot directly fix).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrEmptyImport     = errors.New("no valid entries in import")
	ErrInvalidDate     = errors.New("invalid date")
	ErrMissingDose     = errors.New("medication entry requires a dose")
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrNotEnoughPoints = errors.New("not enough data points")
)

// ValidationError represents an error that the user can fix.
// Examples: missing required field, bad type enum, unparseable date,
// missing dose on a medication entry.
type ValidationError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewValidationErrorWithField creates a new ValidationError with field context.
func NewValidationErrorWithField(field, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError represents a persistence-level failure. The calling command
// reports it as "changes not saved" and the in-memory view keeps working.
type StorageError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *StorageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{
		Message: "changes not saved",
		Cause:   cause,
		Op:      op,
	}
}

// IsStorageError returns true if the error is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// ImportItemError records a validation failure for one item of a batch
// import. The batch itself continues; these are surfaced as warnings.
type ImportItemError struct {
	Index int
	Err   error
}

func (e *ImportItemError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *ImportItemError) Unwrap() error {
	return e.Err
}
