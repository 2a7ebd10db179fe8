package dataclass

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Field errors
	ErrMissingRequiredField = errors.New("missing required field")
	ErrCoercion             = errors.New("cannot coerce value")
	ErrUnknownField         = errors.New("unknown field")

	// Declaration errors
	ErrInvalidSchema = errors.New("invalid record type declaration")

	// Decoding errors
	ErrInvalidFormat = errors.New("invalid format")
)

func NewMissingRequiredFieldError(fieldName string) error {
	return fmt.Errorf("%w: '%s' has no default value and must be set", ErrMissingRequiredField, fieldName)
}

func NewCoercionError(fieldName string, kind Kind, raw any, reason string) error {
	if reason != "" {
		return fmt.Errorf("%w: field '%s' cannot accept %T value as %s: %s",
			ErrCoercion, fieldName, raw, kind, reason)
	}
	return fmt.Errorf("%w: field '%s' cannot accept %T value as %s",
		ErrCoercion, fieldName, raw, kind)
}

func NewUnknownFieldError(recordName, fieldName string) error {
	return fmt.Errorf("%w: '%s' is not declared on record type '%s'", ErrUnknownField, fieldName, recordName)
}

// FieldError attaches a field name to an error produced while importing that
// field's value.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// ValidationError aggregates every field-level error encountered during a
// single import. Errors appear in the record type's declared field order,
// so a caller sees every problem in one round trip instead of only the first.
type ValidationError struct {
	Record string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("validation failed for record type '%s': %s", e.Record, strings.Join(msgs, "; "))
}

// Unwrap exposes the collected field errors so errors.Is reaches the
// underlying sentinels through the aggregate.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// FieldNames returns the names of the failed fields in declared order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return names
}

// IsValidationError returns true if the error is an aggregated import failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsMissingFieldError returns true if the error involves a required field
// that was absent with no default.
func IsMissingFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// IsCoercionError returns true if the error involves a present raw value
// that could not be converted to its field's declared kind.
func IsCoercionError(err error) bool {
	return errors.Is(err, ErrCoercion)
}

// IsSchemaError returns true if the error represents an invalid record type
// declaration.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}
