// Package compose merges and reshapes scalar fields.
package compose

import (
	"fmt"
	"math"

	"islegen/internal/core"
)

// Combine returns (a+b)/totalWeight per cell. The result is not clamped.
func Combine(a, b *core.Field, totalWeight float64) (*core.Field, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("combine: nil field: %w", core.ErrInvalidArgument)
	}
	if a.W != b.W || a.H != b.H {
		return nil, &core.DimensionMismatchError{A: a.Size(), B: b.Size()}
	}
	if totalWeight == 0 || math.IsNaN(totalWeight) || math.IsInf(totalWeight, 0) {
		return nil, fmt.Errorf("combine: total weight %v: %w", totalWeight, core.ErrInvalidArgument)
	}

	out, err := core.NewField(a.W, a.H)
	if err != nil {
		return nil, err
	}
	av, bv, ov := a.Values(), b.Values(), out.Values()
	core.ForEachRow(a.H, func(y int) {
		start := y * a.W
		for i := start; i < start+a.W; i++ {
			ov[i] = (av[i] + bv[i]) / totalWeight
		}
	})
	return out, nil
}

// Map returns a new field with fn applied to every value.
func Map(f *core.Field, fn func(v float64) float64) *core.Field {
	out := f.Clone()
	values := out.Values()
	core.ForEachRow(f.H, func(y int) {
		start := y * f.W
		for i := start; i < start+f.W; i++ {
			values[i] = fn(values[i])
		}
	})
	return out
}

// ApplyContrast maps every value through tanh(4v), sharpening the
// land/water boundary while keeping results in [-1, 1].
func ApplyContrast(f *core.Field) *core.Field {
	return Map(f, Contrast)
}

// Contrast is the per-value curve used by ApplyContrast.
func Contrast(v float64) float64 { return math.Tanh(4 * v) }
