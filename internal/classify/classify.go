// Package classify turns elevation and auxiliary layers into terrain colors.
package classify

import (
	"fmt"
	"image/color"

	"islegen/internal/core"
)

// Category identifies which rule colored a cell.
type Category uint8

const (
	CategoryRock Category = iota
	CategoryWater
	CategoryBeach
	CategoryForest
	CategoryResource
	CategoryGrass
)

// Categories lists every category in rule priority order.
var Categories = []Category{
	CategoryRock,
	CategoryWater,
	CategoryBeach,
	CategoryForest,
	CategoryResource,
	CategoryGrass,
}

func (c Category) String() string {
	switch c {
	case CategoryRock:
		return "rock"
	case CategoryWater:
		return "water"
	case CategoryBeach:
		return "beach"
	case CategoryForest:
		return "forest"
	case CategoryResource:
		return "resource"
	case CategoryGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// ResourceLayer is one deposit type: cells at least MinDistance (Manhattan)
// from the reference point whose layer value exceeds MinValue take Color.
type ResourceLayer struct {
	Name        string
	Field       *core.Field
	MinDistance int
	MinValue    float64
	Color       color.RGBA
}

// RoughnessFunc measures local relief at a cell.
type RoughnessFunc func(f *core.Field, x, y int) float64

// Classifier holds the layers a map is classified from. Trees is optional;
// a nil Trees means no forest anywhere.
type Classifier struct {
	Elevation *core.Field
	Trees     *core.Field
	Resources []ResourceLayer
	Centre    core.Point

	// Roughness defaults to the package-level Roughness when nil.
	Roughness RoughnessFunc
}

// HasTrees reports whether a tree-cover layer is present.
func (c *Classifier) HasTrees() bool { return c.Trees != nil }

// Classify returns the color for cell (x, y).
func (c *Classifier) Classify(x, y int) color.RGBA {
	_, col := c.Categorize(x, y)
	return col
}

// Categorize returns the category and color for cell (x, y), evaluating the
// rules in priority order.
func (c *Classifier) Categorize(x, y int) (Category, color.RGBA) {
	cell := c.cell(x, y)
	for _, r := range rules {
		if col, ok := r.apply(c, cell); ok {
			return r.category, col
		}
	}
	return CategoryGrass, grassColor(cell.elevation)
}

func (c *Classifier) cell(x, y int) cell {
	rough := c.Roughness
	if rough == nil {
		rough = Roughness
	}
	return cell{
		x:         x,
		y:         y,
		elevation: c.Elevation.At(x, y),
		roughness: rough(c.Elevation, x, y),
	}
}

// Validate reports a missing elevation field, or a tree or resource layer
// whose dimensions differ from the elevation field.
func (c *Classifier) Validate() error {
	if c.Elevation == nil {
		return fmt.Errorf("classify: nil elevation field: %w", core.ErrInvalidArgument)
	}
	if c.Trees != nil && c.Trees.Size() != c.Elevation.Size() {
		return &core.DimensionMismatchError{A: c.Elevation.Size(), B: c.Trees.Size()}
	}
	for _, r := range c.Resources {
		if r.Field == nil {
			return fmt.Errorf("classify: resource %s: nil field: %w", r.Name, core.ErrInvalidArgument)
		}
		if r.Field.Size() != c.Elevation.Size() {
			return &core.DimensionMismatchError{A: c.Elevation.Size(), B: r.Field.Size()}
		}
	}
	return nil
}

// Colors classifies every cell of the elevation field, row-parallel.
func Colors(c *Classifier) ([]color.RGBA, []Category, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	w, h := c.Elevation.W, c.Elevation.H
	pixels := make([]color.RGBA, w*h)
	cats := make([]Category, w*h)
	core.ForEachRow(h, func(y int) {
		for x := 0; x < w; x++ {
			i := y*w + x
			cats[i], pixels[i] = c.Categorize(x, y)
		}
	})
	return pixels, cats, nil
}

// Roughness is 0 on border cells and otherwise the sum of absolute
// differences between the cell and its four axis neighbours.
func Roughness(f *core.Field, x, y int) float64 {
	if x <= 0 || y <= 0 || x >= f.W-1 || y >= f.H-1 {
		return 0
	}
	v := f.At(x, y)
	return abs(f.At(x, y-1)-v) +
		abs(f.At(x+1, y)-v) +
		abs(f.At(x, y+1)-v) +
		abs(f.At(x-1, y)-v)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
