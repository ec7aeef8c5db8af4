package terrain

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"go.uber.org/multierr"

	"islegen/internal/core"
)

// LayerKind selects the noise used for a layer.
type LayerKind string

const (
	// LayerGradient is the lattice gradient noise from package noise. An
	// empty kind means the same.
	LayerGradient LayerKind = "gradient"
	// LayerSimplex is OpenSimplex noise with feature size GridSize.
	LayerSimplex LayerKind = "simplex"
)

// RenderMode selects how a generated map is turned into pixels.
type RenderMode string

const (
	// RenderClassified colors cells by terrain category.
	RenderClassified RenderMode = "classified"
	// RenderGrayscale maps elevation [-1, 1] to gray levels.
	RenderGrayscale RenderMode = "grayscale"
)

// Layer describes one noise field.
type Layer struct {
	Kind     LayerKind `yaml:"kind"`
	GridSize int       `yaml:"grid_size"`
	Scale    float64   `yaml:"scale"`
	// Weight divides the sum of this layer and the combination of every
	// layer after it. Ignored for the last elevation layer.
	Weight float64 `yaml:"weight,omitempty"`
}

// ElevationConfig lists the elevation layers from coarsest to finest.
type ElevationConfig struct {
	Layers   []Layer `yaml:"layers"`
	Contrast bool    `yaml:"contrast"`
}

// IslandConfig controls radial island shaping around the map centre.
type IslandConfig struct {
	Enabled bool `yaml:"enabled"`
	// FalloffWidth of 0 means a third of the shorter map side.
	FalloffWidth float64 `yaml:"falloff_width"`
}

// ResourceConfig describes one deposit layer.
type ResourceConfig struct {
	Name        string  `yaml:"name"`
	Layer       Layer   `yaml:",inline"`
	MinDistance int     `yaml:"min_distance"`
	MinValue    float64 `yaml:"min_value"`
	Color       string  `yaml:"color"`
}

// Config controls map generation.
type Config struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Seed   int64      `yaml:"seed"`
	Render RenderMode `yaml:"render"`

	Elevation ElevationConfig  `yaml:"elevation"`
	Island    IslandConfig     `yaml:"island"`
	Trees     *Layer           `yaml:"trees"`
	Resources []ResourceConfig `yaml:"resources"`
}

// DefaultConfig returns the standard island configuration: a continent
// layer, a medium layer and a fine layer, contrast, island shaping, a tree
// layer and three deposits.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Seed:   42,
		Render: RenderClassified,
		Elevation: ElevationConfig{
			Layers: []Layer{
				{Kind: LayerGradient, GridSize: 64, Scale: 4, Weight: 5},
				{Kind: LayerGradient, GridSize: 16, Scale: 1, Weight: 1.25},
				{Kind: LayerGradient, GridSize: 8, Scale: 0.25},
			},
			Contrast: true,
		},
		Island: IslandConfig{Enabled: true},
		Trees:  &Layer{Kind: LayerGradient, GridSize: 8, Scale: 1},
		Resources: []ResourceConfig{
			{Name: "iron", Layer: Layer{Kind: LayerGradient, GridSize: 4, Scale: 1}, MinDistance: 40, MinValue: 0.55, Color: "#B4643C"},
			{Name: "gold", Layer: Layer{Kind: LayerSimplex, GridSize: 6, Scale: 1}, MinDistance: 80, MinValue: 0.6, Color: "#E6C828"},
			{Name: "coal", Layer: Layer{Kind: LayerGradient, GridSize: 5, Scale: 1}, MinValue: 0.6, Color: "#282828"},
		},
	}
}

// PerlinConfig returns the plain composite preview: elevation layers with
// contrast, rendered in grayscale.
func PerlinConfig() Config {
	c := DefaultConfig()
	c.Render = RenderGrayscale
	c.Island.Enabled = false
	c.Trees = nil
	c.Resources = nil
	return c
}

// Centre is the island centre and the classifier reference centre.
func (c Config) Centre() core.Point {
	return core.Size{W: c.Width, H: c.Height}.Center()
}

// Falloff resolves the island falloff width.
func (c Config) Falloff() float64 {
	if c.Island.FalloffWidth > 0 {
		return c.Island.FalloffWidth
	}
	side := c.Width
	if c.Height < side {
		side = c.Height
	}
	return float64(side) / 3
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error
	if c.Width <= 0 || c.Height <= 0 {
		errs = multierr.Append(errs, invalid("size %dx%d must be positive", c.Width, c.Height))
	}
	switch c.Render {
	case RenderClassified, RenderGrayscale:
	default:
		errs = multierr.Append(errs, invalid("render must be %q or %q, got %q", RenderClassified, RenderGrayscale, c.Render))
	}
	if len(c.Elevation.Layers) == 0 {
		errs = multierr.Append(errs, invalid("elevation.layers cannot be empty"))
	}
	last := len(c.Elevation.Layers) - 1
	for i, l := range c.Elevation.Layers {
		name := fmt.Sprintf("elevation.layers[%d]", i)
		errs = multierr.Append(errs, l.validate(name))
		if i != last && (l.Weight == 0 || math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0)) {
			errs = multierr.Append(errs, invalid("%s.weight must be non-zero and finite", name))
		}
	}
	if c.Island.FalloffWidth < 0 || math.IsNaN(c.Island.FalloffWidth) || math.IsInf(c.Island.FalloffWidth, 0) {
		errs = multierr.Append(errs, invalid("island.falloff_width must be zero or positive, got %v", c.Island.FalloffWidth))
	}
	if c.Trees != nil {
		errs = multierr.Append(errs, c.Trees.validate("trees"))
	}
	for i, r := range c.Resources {
		name := fmt.Sprintf("resources[%d]", i)
		if r.Name == "" {
			errs = multierr.Append(errs, invalid("%s.name must be set", name))
		}
		if r.MinDistance < 0 {
			errs = multierr.Append(errs, invalid("%s.min_distance cannot be negative", name))
		}
		if _, err := ParseHexColor(r.Color); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s.color: %w", name, err))
		}
		errs = multierr.Append(errs, r.Layer.validate(name))
	}
	return errs
}

func (l Layer) validate(name string) error {
	var errs error
	switch l.Kind {
	case "", LayerGradient, LayerSimplex:
	default:
		errs = multierr.Append(errs, invalid("%s.kind must be %q or %q, got %q", name, LayerGradient, LayerSimplex, l.Kind))
	}
	if l.GridSize <= 0 {
		errs = multierr.Append(errs, invalid("%s.grid_size must be positive, got %d", name, l.GridSize))
	}
	if math.IsNaN(l.Scale) || math.IsInf(l.Scale, 0) {
		errs = multierr.Append(errs, invalid("%s.scale must be finite", name))
	}
	return errs
}

func invalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, core.ErrInvalidArgument)...)
}

// ParseHexColor decodes a "#RRGGBB" string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%q must be a hex RGB value: %w", s, core.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q must be a hex RGB value: %w", s, core.ErrInvalidArgument)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyOverrides(DefaultConfig(), cfg)
}

// ApplyOverrides applies flag-style key/value pairs on top of base.
func ApplyOverrides(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["render"]; ok {
		switch mode := RenderMode(v); mode {
		case RenderClassified, RenderGrayscale:
			c.Render = mode
		}
	}
	if v, ok := cfg["contrast"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Elevation.Contrast = parsed
		}
	}
	if v, ok := cfg["island"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Island.Enabled = parsed
		}
	}
	if v, ok := cfg["falloff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Island.FalloffWidth = parsed
		}
	}
	if v, ok := cfg["trees"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			if !parsed {
				c.Trees = nil
			} else if c.Trees == nil {
				c.Trees = &Layer{Kind: LayerGradient, GridSize: 8, Scale: 1}
			}
		}
	}
	if c.Trees != nil {
		trees := *c.Trees
		if v, ok := cfg["tree_grid"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				trees.GridSize = parsed
			}
		}
		if v, ok := cfg["tree_scale"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				trees.Scale = parsed
			}
		}
		c.Trees = &trees
	}
	if v, ok := cfg["resources"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil && !parsed {
			c.Resources = nil
		}
	}
	return c
}
