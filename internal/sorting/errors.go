package sorting

import (
	"errors"
	"fmt"
)

// Precondition errors returned by generator constructors.
var (
	// ErrEmptyInput indicates an array with no elements.
	ErrEmptyInput = errors.New("sorting: empty input (size must be at least 1)")

	// ErrInvalidRange indicates explicit bounds that do not describe a slice of the array.
	ErrInvalidRange = errors.New("sorting: invalid index range")

	// ErrUnknownAlgorithm indicates a name missing from the registry.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// PreconditionError wraps a precondition failure with the arguments that caused it.
type PreconditionError struct {
	Algorithm string
	Size      int
	Low       int
	High      int
	Wrapped   error
}

func (e *PreconditionError) Error() string {
	if errors.Is(e.Wrapped, ErrInvalidRange) {
		return fmt.Sprintf("%s: %v: [%d, %d] for size %d", e.Algorithm, e.Wrapped, e.Low, e.High, e.Size)
	}
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Wrapped)
}

func (e *PreconditionError) Unwrap() error {
	return e.Wrapped
}
