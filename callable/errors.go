package callable

import (
	"errors"
	"fmt"
)

// ErrNotCallable is returned when a value cannot be invoked with zero
// arguments.
var ErrNotCallable = errors.New("parameter must be callable")

// TypeError reports the type of a value that failed the callable check. It
// matches ErrNotCallable with errors.Is.
type TypeError struct {
	Type string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: got %s", ErrNotCallable, e.Type)
}

func (e *TypeError) Unwrap() error {
	return ErrNotCallable
}

// InvocationError describes a failed callback run: either the callable
// returned an error or it panicked.
type InvocationError struct {
	Name  string
	Err   error
	Panic interface{}
	Stack []byte
}

func (e *InvocationError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("callable %s panicked: %v", e.Name, e.Panic)
	}
	return fmt.Sprintf("callable %s failed: %v", e.Name, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Panicked reports whether the invocation ended with a panic.
func (e *InvocationError) Panicked() bool {
	return e.Panic != nil
}
