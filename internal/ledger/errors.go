// Package ledger implements the payment tracking engine: the payment,
// category, and user stores, the permission-gated mutation rules, and the
// bulk-import/restore reconciliation logic.
package ledger

import (
	"errors"
	"fmt"
)

// Engine errors. All are local, synchronous, and non-retryable; a rejected
// operation leaves the stores unchanged.
var (
	// ErrPermissionDenied means the acting user lacks the required capability.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound means a referenced id or label is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername means a user with the same username already exists.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrSelfDeletion means a user tried to delete their own account.
	ErrSelfDeletion = errors.New("cannot delete your own account")
	// ErrSelfLockout means a user tried to drop their own manage-users capability.
	ErrSelfLockout = errors.New("cannot remove your own user management permission")
	// ErrLabelInUse means a category label is referenced by at least one payment.
	ErrLabelInUse = errors.New("label is in use")
	// ErrInvalidCredentials means authentication failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a single malformed record rejected during bulk
// import. It carries the offending record so callers can surface it.
type ValidationError struct {
	Err    error
	Record ImportRecord
	Row    int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Row, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
