// Package errs holds the error kinds shared by the gateways and the session
// layer. Callers match them with errors.Is; gateways wrap them with the
// offending identifiers.
package errs

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrStoreUnavailable means the store could not be reached or failed mid-call.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDuplicateKey means the primary key is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyMissing means a referenced pilgrim, admin or resource does not exist.
	ErrForeignKeyMissing = errors.New("referenced record does not exist")
	// ErrUniquenessViolation covers secondary unique keys, e.g. one medical profile per pilgrim.
	ErrUniquenessViolation = errors.New("uniqueness violation")
	// ErrIntegrityViolation means a delete would orphan dependent rows.
	ErrIntegrityViolation = errors.New("integrity violation")
	// ErrCapacityExceeded means an accommodation is already full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNotFound is returned by updates and deletes aimed at a missing row.
	// Reads report absence through their comma-ok result instead.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput means a field failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries per-field messages and matches ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
