package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks precondition violations such as non-positive
	// dimensions or grid sizes.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDimensionMismatch marks operations over fields of different shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// DimensionMismatchError reports the shapes of two fields that were
// expected to match.
type DimensionMismatchError struct {
	A, B Size
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("fields are not the same dimensions: A: %dx%d, B: %dx%d", e.A.W, e.A.H, e.B.W, e.B.H)
}

// Is lets errors.Is match ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
