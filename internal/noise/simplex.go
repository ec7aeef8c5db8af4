package noise

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"islegen/internal/core"
)

// GenerateSimplexField builds a width×height OpenSimplex field sampled at
// frequency 1/featureSize, scaled and clamped to [-1, 1]. The simplex seed is
// drawn from src so the field stays reproducible from one run seed.
func GenerateSimplexField(width, height, featureSize int, scale float64, src Source) (*core.Field, error) {
	if featureSize <= 0 {
		return nil, fmt.Errorf("feature size %d: %w", featureSize, core.ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("simplex field: nil random source: %w", core.ErrInvalidArgument)
	}
	field, err := core.NewField(width, height)
	if err != nil {
		return nil, err
	}

	gen := opensimplex.New(src.Int64())
	freq := 1 / float64(featureSize)
	core.ForEachRow(height, func(y int) {
		row := field.Row(y)
		for x := range row {
			v := gen.Eval2(float64(x)*freq, float64(y)*freq)
			row[x] = core.Clamp(v*scale, -1, 1)
		}
	})
	return field, nil
}
