package trimview

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation is matched by every *InvariantError.
	ErrInvariantViolation = errors.New("trimview: invariant violation")

	// ErrNoGesture is returned when a move or up event arrives without a preceding down.
	ErrNoGesture = errors.New("trimview: no gesture in progress")
)

// InvariantError reports a configuration value which cannot satisfy the range invariants.
// The controller state is left untouched when one is returned.
type InvariantError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("trimview: %s=%d: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvariantViolation) succeed.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func invariantErr(field string, value int, format string, args ...any) error {
	return &InvariantError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}
