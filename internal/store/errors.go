package store

import (
	"errors"
	"fmt"
)

var errMissingEventType = errors.New("missing event type")

// NotFoundError reports a rename whose source document does not exist.
// Plain loads never return it: a missing document falls back to the template.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Username)
}

// ConflictError reports a rename whose destination already has a document.
// The check runs before any filesystem mutation, so a conflicting rename
// leaves both documents untouched.
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("profile already exists: %s", e.Username)
}

// PersistError wraps a failed document write. Write-path failures always
// propagate to the caller; they are never swallowed like read-path fallbacks.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
