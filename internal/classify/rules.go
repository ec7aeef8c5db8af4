package classify

import (
	"image/color"

	"islegen/internal/core"
)

const (
	roughnessSteep    = 0.27
	roughnessHighland = 0.15
	highlandElevation = 0.4
	beachCeiling      = 0.1
	treeCoverMin      = 0.1
)

var (
	rockColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	beachColor = color.RGBA{R: 200, G: 200, B: 20, A: 255}
)

type cell struct {
	x, y      int
	elevation float64
	roughness float64
}

type rule struct {
	category Category
	apply    func(c *Classifier, cl cell) (color.RGBA, bool)
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{CategoryRock, rockRule},
	{CategoryWater, waterRule},
	{CategoryBeach, beachRule},
	{CategoryForest, forestRule},
	{CategoryResource, resourceRule},
}

func rockRule(_ *Classifier, cl cell) (color.RGBA, bool) {
	if (cl.roughness > roughnessSteep && cl.elevation > 0) ||
		(cl.roughness > roughnessHighland && cl.elevation > highlandElevation) {
		return rockColor, true
	}
	return color.RGBA{}, false
}

func waterRule(_ *Classifier, cl cell) (color.RGBA, bool) {
	if cl.elevation >= 0 {
		return color.RGBA{}, false
	}
	return waterColor(cl.elevation), true
}

func beachRule(_ *Classifier, cl cell) (color.RGBA, bool) {
	if cl.elevation >= 0 && cl.elevation < beachCeiling {
		return beachColor, true
	}
	return color.RGBA{}, false
}

func forestRule(c *Classifier, cl cell) (color.RGBA, bool) {
	if !c.HasTrees() || cl.elevation < beachCeiling {
		return color.RGBA{}, false
	}
	if c.Trees.At(cl.x, cl.y) <= treeCoverMin {
		return color.RGBA{}, false
	}
	return forestColor(cl.elevation), true
}

func resourceRule(c *Classifier, cl cell) (color.RGBA, bool) {
	ref := ReferencePoint(c.Centre)
	dist := manhattan(cl.x, cl.y, ref)
	for _, layer := range c.Resources {
		if layer.Field == nil {
			continue
		}
		if dist >= layer.MinDistance && layer.Field.At(cl.x, cl.y) > layer.MinValue {
			return layer.Color, true
		}
	}
	return color.RGBA{}, false
}

// ReferencePoint is the point resource exclusion distances are measured
// from: half of the centre's coordinates.
func ReferencePoint(centre core.Point) core.Point {
	return core.Point{X: centre.X / 2, Y: centre.Y / 2}
}

func manhattan(x, y int, p core.Point) int {
	dx, dy := x-p.X, y-p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func waterColor(v float64) color.RGBA {
	d := v + 1
	return color.RGBA{
		R: channel(10 + 20*d),
		G: channel(60 + 40*d),
		B: channel(50 + 200*d),
		A: 255,
	}
}

func forestColor(v float64) color.RGBA {
	return color.RGBA{R: channel(10 + 10*v), G: channel(100 + 50*v), B: channel(10 + 20*v), A: 255}
}

func grassColor(v float64) color.RGBA {
	return color.RGBA{R: channel(10 + 10*v), G: channel(150 + 50*v), B: channel(10 + 20*v), A: 255}
}

// channel truncates to an 8-bit value, saturating outside [0, 255].
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
