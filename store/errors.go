package store

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/internal/resource"
)

var (
	// ErrNotFound is returned when no vector is stored under a name. It is
	// the same value as blobstore.ErrNotFound.
	ErrNotFound = blobstore.ErrNotFound

	// ErrInvalidName is returned for an empty name, a name with a leading
	// "/" or a ".." path element.
	ErrInvalidName = errors.New("store: invalid name")

	// ErrMemoryLimitExceeded is returned when an operation would exceed
	// the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// OpError records the operation and name that failed.
type OpError struct {
	Op   string
	Name string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Name: name, Err: err}
}
