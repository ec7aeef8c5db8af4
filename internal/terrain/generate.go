// Package terrain runs the full map pipeline: noise layers, compositing,
// island shaping and classification.
package terrain

import (
	"fmt"
	"image/color"

	"islegen/internal/classify"
	"islegen/internal/compose"
	"islegen/internal/core"
	"islegen/internal/island"
	"islegen/internal/noise"
	"islegen/internal/render"
	pkgcore "islegen/pkg/core"
)

// Map is a generated terrain map.
type Map struct {
	Size core.Size
	Seed int64

	Elevation *core.Field
	Trees     *core.Field
	Resources []classify.ResourceLayer

	// Classifier is nil for grayscale maps.
	Classifier *classify.Classifier
	Pixels     []color.RGBA
	// Categories is nil for grayscale maps.
	Categories []classify.Category
}

// Histogram counts cells per category.
func (m *Map) Histogram() map[classify.Category]int {
	counts := make(map[classify.Category]int, len(classify.Categories))
	for _, c := range m.Categories {
		counts[c]++
	}
	return counts
}

// Generate builds a map from cfg. Every layer draws from one RNG seeded with
// seed, in order: elevation layers, tree layer, resource layers.
func Generate(cfg Config, seed int64) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	rng := pkgcore.NewRNG(seed)

	elevation, err := buildElevation(cfg, rng)
	if err != nil {
		return nil, err
	}

	m := &Map{
		Size:      core.Size{W: cfg.Width, H: cfg.Height},
		Seed:      seed,
		Elevation: elevation,
	}
	if cfg.Render == RenderGrayscale {
		m.Pixels = render.GrayPixels(elevation.Values())
		return m, nil
	}

	if cfg.Trees != nil {
		m.Trees, err = buildLayer(*cfg.Trees, cfg.Width, cfg.Height, rng)
		if err != nil {
			return nil, fmt.Errorf("tree layer: %w", err)
		}
	}
	for _, rc := range cfg.Resources {
		field, err := buildLayer(rc.Layer, cfg.Width, cfg.Height, rng)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", rc.Name, err)
		}
		col, err := ParseHexColor(rc.Color)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", rc.Name, err)
		}
		m.Resources = append(m.Resources, classify.ResourceLayer{
			Name:        rc.Name,
			Field:       field,
			MinDistance: rc.MinDistance,
			MinValue:    rc.MinValue,
			Color:       col,
		})
	}

	m.Classifier = &classify.Classifier{
		Elevation: elevation,
		Trees:     m.Trees,
		Resources: m.Resources,
		Centre:    cfg.Centre(),
	}
	m.Pixels, m.Categories, err = classify.Colors(m.Classifier)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return m, nil
}

func buildElevation(cfg Config, rng *pkgcore.RNG) (*core.Field, error) {
	layers := make([]*core.Field, len(cfg.Elevation.Layers))
	for i, l := range cfg.Elevation.Layers {
		f, err := buildLayer(l, cfg.Width, cfg.Height, rng)
		if err != nil {
			return nil, fmt.Errorf("elevation layer %d: %w", i, err)
		}
		layers[i] = f
	}

	acc := layers[len(layers)-1]
	for i := len(layers) - 2; i >= 0; i-- {
		combined, err := compose.Combine(layers[i], acc, cfg.Elevation.Layers[i].Weight)
		if err != nil {
			return nil, fmt.Errorf("elevation layer %d: %w", i, err)
		}
		acc = combined
	}

	if cfg.Elevation.Contrast {
		acc = compose.ApplyContrast(acc)
	}
	if cfg.Island.Enabled {
		shaped, err := island.Shape(acc, cfg.Centre(), cfg.Falloff())
		if err != nil {
			return nil, fmt.Errorf("island: %w", err)
		}
		acc = shaped
	}
	return acc, nil
}

func buildLayer(l Layer, w, h int, rng *pkgcore.RNG) (*core.Field, error) {
	switch l.Kind {
	case LayerSimplex:
		return noise.GenerateSimplexField(w, h, l.GridSize, l.Scale, rng)
	default:
		return noise.GenerateField(w, h, l.GridSize, l.Scale, rng)
	}
}
