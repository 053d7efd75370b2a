package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned for a handle that is not alive in the tree.
	ErrInvalidHandle = errors.New("invalid node handle")

	// ErrCyclicChild is returned when a child assignment would create a cycle.
	ErrCyclicChild = errors.New("child is an ancestor of the parent")

	// ErrChildOfSelf is returned when a node is declared as its own child.
	// It matches ErrCyclicChild under errors.Is.
	ErrChildOfSelf = fmt.Errorf("node cannot be its own child: %w", ErrCyclicChild)

	// ErrChildHasParent is returned when a child is already attached elsewhere
	// or listed twice.
	ErrChildHasParent = errors.New("child already has a parent")

	// ErrNotChild is returned when a node is not a child of the given parent.
	ErrNotChild = errors.New("node is not a child of parent")

	// ErrChildIndex is returned for a child index outside the child list.
	ErrChildIndex = errors.New("child index out of range")

	// ErrInvalidDimension is returned for non-finite or disallowed negative style values.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// DimensionError describes one rejected style field.
type DimensionError struct {
	Field  string
	Value  float32
	Reason string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s = %v (%s)", ErrInvalidDimension, e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidDimension) hold.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}
