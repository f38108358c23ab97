// Package common defines the error taxonomy and small helpers shared by the
// signon client layers. Callers should match errors with errors.Is / errors.As.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Storage-level errors.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrCorruptRecord = errors.New("corrupt record")
	ErrInvalidRecord = errors.New("invalid record")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAdminDenied      = errors.New("invalid admin credentials")

	// Translation errors.
	ErrNoTranslation = errors.New("nothing to translate")
)

// StorageError reports that the persistence medium rejected an operation.
// It is non-fatal: the caller shows a notice and carries on.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s[%s]: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError carries field-level messages for user input that was
// rejected before any persistence attempt.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsValidation reports whether err is (or wraps) a ValidationError and
// returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
