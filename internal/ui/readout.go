package ui

import (
	"fmt"
	"strings"

	"islegen/internal/core"
	"islegen/internal/terrain"
)

type mapProvider interface {
	Map() *terrain.Map
}

// Readout describes gen's current map at cell (x, y): a header with the
// seed and key bindings, then the elevation and category when the cell is
// on the map.
func Readout(gen core.Generator, seed int64, x, y int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s seed %d  [R] regen [S] new seed [H] hide [Q] quit", gen.Name(), seed)

	provider, ok := gen.(mapProvider)
	if !ok {
		return b.String()
	}
	m := provider.Map()
	if m == nil || !m.Elevation.Contains(x, y) {
		return b.String()
	}
	fmt.Fprintf(&b, "\n(%d,%d) elevation %.3f", x, y, m.Elevation.At(x, y))
	if m.Classifier != nil {
		cat, _ := m.Classifier.Categorize(x, y)
		fmt.Fprintf(&b, " %s", cat)
	}
	return b.String()
}
