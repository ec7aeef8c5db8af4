// Package noise synthesizes gradient noise fields on an integer pixel grid.
package noise

import (
	"fmt"
	"math"

	"islegen/internal/core"
)

// Source supplies the random draws used to build noise layers.
// *islegen/pkg/core.RNG satisfies it.
type Source interface {
	Angle() float64
	Int64() int64
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// GradientGrid stores one unit gradient per noise-cell corner in row-major order.
type GradientGrid struct {
	Cols, Rows int
	vecs       []Vec2
}

// At returns the gradient stored at corner (cx, cy).
func (g *GradientGrid) At(cx, cy int) Vec2 { return g.vecs[cy*g.Cols+cx] }

// GenerateGradients draws a random unit vector for each of cols×rows corners.
// Draws happen in row-major order, so identical source state yields an
// identical grid.
func GenerateGradients(cols, rows int, src Source) (*GradientGrid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("gradient grid %dx%d: %w", cols, rows, core.ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("gradient grid: nil random source: %w", core.ErrInvalidArgument)
	}
	g := &GradientGrid{Cols: cols, Rows: rows, vecs: make([]Vec2, cols*rows)}
	for i := range g.vecs {
		sin, cos := math.Sincos(src.Angle())
		g.vecs[i] = Vec2{X: cos, Y: sin}
	}
	return g, nil
}

// GridDims returns the corner grid needed to cover a width×height field
// sampled every gridSize pixels.
func GridDims(width, height, gridSize int) (cols, rows int) {
	cols = (width+gridSize-1)/gridSize + 2
	rows = (height+gridSize-1)/gridSize + 2
	return cols, rows
}
