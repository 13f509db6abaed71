package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the passenger processing core. Callers match them
// with errors.Is; the transport layer turns each kind into a stable status code.
var (
	// ErrNotFound means the referenced flight, passenger or bag does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a state-machine or business rule rejected the operation,
	// including duplicate unique keys.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument means a value is outside its domain range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExternalDependency means the store or the event channel failed.
	ErrExternalDependency = errors.New("external dependency failure")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// External wraps err as an ExternalDependency failure. A nil err stays nil.
func External(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrExternalDependency, op, err)
}
