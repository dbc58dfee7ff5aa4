package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the cache file is absent and a refresh is required.
	ErrNotFound = errors.New("template cache not found")
	// ErrMalformed means the cached bytes do not decode into the catalog schema.
	ErrMalformed = errors.New("template cache is malformed")
)

// ReadError is returned by Load and Decode. Kind is ErrNotFound, ErrMalformed
// or nil for other I/O failures; both Kind and Err are visible to errors.Is.
type ReadError struct {
	Path string
	Kind error
	Err  error
}

func (e *ReadError) Error() string {
	kind := "read template cache"
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", kind, e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// WriteError is returned when the cache directory or file cannot be written.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
