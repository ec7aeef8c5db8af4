package noise

import (
	"fmt"
	"math"

	"islegen/internal/core"
)

// Sample evaluates gradient noise at pixel (x, y). The four corners around
// the pixel's cell contribute the dot product of their gradient with the
// offset from the pixel to the corner; the results are blended with a
// smoothstep curve, normalized by √2/gridSize, scaled and clamped to [-1, 1].
func Sample(x, y, gridSize int, grads *GradientGrid, scale float64) float64 {
	cellX := x / gridSize
	cellY := y / gridSize
	size := float64(gridSize)

	nw := cornerContribution(grads.At(cellX, cellY), x, y, cellX, cellY, gridSize)
	ne := cornerContribution(grads.At(cellX+1, cellY), x, y, cellX+1, cellY, gridSize)
	sw := cornerContribution(grads.At(cellX, cellY+1), x, y, cellX, cellY+1, gridSize)
	se := cornerContribution(grads.At(cellX+1, cellY+1), x, y, cellX+1, cellY+1, gridSize)

	u := float64(x-cellX*gridSize) / size
	v := float64(y-cellY*gridSize) / size

	north := lerp(nw, ne, u)
	south := lerp(sw, se, u)
	value := lerp(north, south, v)

	return core.Clamp(value*math.Sqrt2/size*scale, -1, 1)
}

// cornerContribution is the dot product of gradient g at corner (cx, cy)
// with the vector from pixel (x, y) to that corner.
func cornerContribution(g Vec2, x, y, cx, cy, gridSize int) float64 {
	offset := Vec2{X: float64(cx*gridSize - x), Y: float64(cy*gridSize - y)}
	return g.Dot(offset)
}

// lerp blends a0 and a1 with the cubic ease (3-2w)w², whose derivative
// vanishes at both ends.
func lerp(a0, a1, w float64) float64 {
	return (a1-a0)*(3-w*2)*w*w + a0
}

// GenerateField builds a width×height gradient noise field. Gradients are
// drawn from src first; pixels are then sampled row-parallel.
func GenerateField(width, height, gridSize int, scale float64, src Source) (*core.Field, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("grid size %d: %w", gridSize, core.ErrInvalidArgument)
	}
	field, err := core.NewField(width, height)
	if err != nil {
		return nil, err
	}
	cols, rows := GridDims(width, height, gridSize)
	grads, err := GenerateGradients(cols, rows, src)
	if err != nil {
		return nil, err
	}

	core.ForEachRow(height, func(y int) {
		row := field.Row(y)
		for x := range row {
			row[x] = Sample(x, y, gridSize, grads, scale)
		}
	})
	return field, nil
}
