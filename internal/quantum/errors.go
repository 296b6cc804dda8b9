package quantum

import (
	"errors"
	"fmt"
)

// Error kinds returned by validated entry points.
var (
	// ErrInvalidArgument indicates a numeric input outside the formula's domain.
	ErrInvalidArgument = errors.New("quantum: invalid argument")

	// ErrUnrepresentable indicates an input the simplified model cannot express.
	ErrUnrepresentable = errors.New("quantum: unrepresentable by model")
)

// DomainError wraps an error kind with the operation and offending value.
type DomainError struct {
	Op     string
	Value  any
	Reason string
	Kind   error
}

func (e *DomainError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s(%v): %v", e.Op, e.Value, e.Kind)
	}
	return fmt.Sprintf("%s(%v): %v: %s", e.Op, e.Value, e.Kind, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// Invalid builds a DomainError of kind ErrInvalidArgument.
func Invalid(op string, value any, reason string) error {
	return &DomainError{Op: op, Value: value, Reason: reason, Kind: ErrInvalidArgument}
}

// Unrepresentable builds a DomainError of kind ErrUnrepresentable.
func Unrepresentable(op string, value any, reason string) error {
	return &DomainError{Op: op, Value: value, Reason: reason, Kind: ErrUnrepresentable}
}
