package bars

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrInvalidSize indicates a bar count below one.
	ErrInvalidSize = errors.New("bars: array size must be at least 1")

	// ErrNotPermutation indicates the values no longer form a permutation of 1..N.
	ErrNotPermutation = errors.New("bars: values are not a permutation of 1..N")
)

// IndexError reports an element that broke an array invariant.
type IndexError struct {
	Index   int
	Value   int
	Wrapped error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s (index %d, value %d)", e.Wrapped.Error(), e.Index, e.Value)
}

func (e *IndexError) Unwrap() error {
	return e.Wrapped
}
