// Package errs defines the error kinds shared by the assessment core.
//
// Every failure returned by the catalog, scoring and session packages wraps
// exactly one of the sentinels below, so callers classify with errors.Is.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrOutOfRange indicates a category or question index outside its bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound indicates an unknown category id or feedback band.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a malformed input such as a score outside [1,5].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates a transition or mutation the current phase forbids.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError carries per-field messages for rejected form input.
// Fields maps a field name (e.g. "firstName") to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidArgument, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// Field returns the message for a field, or "" if the field is valid.
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

// FieldErrors extracts the per-field messages from err, if it is (or wraps)
// a *ValidationError. Returns nil otherwise.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
