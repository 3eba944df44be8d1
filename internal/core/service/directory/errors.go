package directory

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// id errors
	ErrEmptyID  = errors.New("listing ID cannot be empty")
	ErrNotFound = errors.New("listing not found")

	// payload errors
	ErrMissingField   = errors.New("required field is missing")
	ErrNoDataProvided = errors.New("no data provided")

	// others
	ErrInternal = errors.New("internal server error")
)

// FieldError names one offending field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failing field of a create/update payload.
// It is decided at the point of failure so callers switch on the error kind,
// never on message text.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// add appends a field violation, allocating the error lazily so a nil result
// means "valid".
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns nil when no violations were recorded.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
