// ABOUTME: Storage error kinds shared by all backends.
// ABOUTME: Separates routine absence (ErrNotFound) from real storage failures.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound means the requested week has no stored record.
var ErrNotFound = errors.New("not found")

// StorageError wraps a failure of the underlying file, table, or keyspace.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func notFound(weekNumber int) error {
	return fmt.Errorf("week %d: %w", weekNumber, ErrNotFound)
}
