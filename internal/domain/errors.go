package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrPersistence   = errors.New("persistence error")
)

// FieldErrorCode classifies a field-level validation failure.
type FieldErrorCode string

const (
	FieldMissing FieldErrorCode = "missing"
	FieldInvalid FieldErrorCode = "invalid"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Code    FieldErrorCode
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	first := e.Errors[0]
	if first.Code == FieldMissing {
		return "Missing required field: " + first.Field
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("Invalid field %s: %s", first.Field, first.Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return "Invalid fields: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// MissingField returns the name of the missing required field, if that is
// what this error reports.
func (e *ValidationError) MissingField() (string, bool) {
	if len(e.Errors) == 0 || e.Errors[0].Code != FieldMissing {
		return "", false
	}
	return e.Errors[0].Field, true
}

// NewMissingFieldError reports a required field that was absent or empty.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: FieldMissing, Message: "required"}},
	}
}

// NewValidationError creates a ValidationError for a single invalid field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: FieldInvalid, Message: message}},
	}
}

// PersistenceKind tells the caller whether the store could not be reached or
// refused the write.
type PersistenceKind string

const (
	PersistenceUnavailable PersistenceKind = "unavailable"
	PersistenceWriteFailed PersistenceKind = "write_failed"
)

// PersistenceError is returned by record stores when the durable medium
// cannot serve a request. The previous durable state is always intact.
type PersistenceError struct {
	Kind PersistenceKind
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// Unavailable wraps err as a PersistenceError of kind PersistenceUnavailable.
func Unavailable(op string, err error) *PersistenceError {
	return &PersistenceError{Kind: PersistenceUnavailable, Op: op, Err: err}
}

// WriteFailed wraps err as a PersistenceError of kind PersistenceWriteFailed.
func WriteFailed(op string, err error) *PersistenceError {
	return &PersistenceError{Kind: PersistenceWriteFailed, Op: op, Err: err}
}
