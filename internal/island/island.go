// Package island biases an elevation field toward land around a centre point.
package island

import (
	"fmt"
	"math"

	"islegen/internal/core"
)

// Altitude is the radial bump added by Shape for a cell offset (dx, dy) from
// the centre: tanh(4*(exp(-(dx²+dy²)/falloff²) - 0.5)). It is tanh(2) at the
// centre and tends to tanh(-2) far away.
func Altitude(dx, dy int, falloffWidth float64) float64 {
	d2 := float64(dx*dx + dy*dy)
	return math.Tanh(4 * (math.Exp(-d2/(falloffWidth*falloffWidth)) - 0.5))
}

// Shape returns a copy of f with the positive part of the radial bump added
// and clamped to [-1, 1]. Cells where the bump is not positive keep their
// value, so distant ocean detail is preserved.
func Shape(f *core.Field, centre core.Point, falloffWidth float64) (*core.Field, error) {
	if f == nil {
		return nil, fmt.Errorf("island: nil field: %w", core.ErrInvalidArgument)
	}
	if !(falloffWidth > 0) || math.IsInf(falloffWidth, 0) {
		return nil, fmt.Errorf("island: falloff width %v: %w", falloffWidth, core.ErrInvalidArgument)
	}

	out := f.Clone()
	core.ForEachRow(f.H, func(y int) {
		row := out.Row(y)
		for x := range row {
			alt := Altitude(x-centre.X, y-centre.Y, falloffWidth)
			if alt > 0 {
				row[x] = core.Clamp(row[x]+alt, -1, 1)
			}
		}
	})
	return out, nil
}

// Radius returns the distance from the centre at which the bump crosses
// zero, i.e. the nominal shoreline radius for a flat input: falloff·√ln 2.
func Radius(falloffWidth float64) float64 {
	return falloffWidth * math.Sqrt(math.Ln2)
}
