package terrain

import (
	"image/color"

	"islegen/internal/core"
)

// Generator adapts a Config to core.Generator, regenerating on Reset.
type Generator struct {
	name string
	cfg  Config
	m    *Map
}

// NewGenerator returns a generator for cfg. Call Reset before Pixels.
func NewGenerator(name string, cfg Config) *Generator {
	return &Generator{name: name, cfg: cfg}
}

// Name returns the preset identifier.
func (g *Generator) Name() string { return g.name }

// Size returns the map dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Reset regenerates the map. A zero seed uses the configured seed.
func (g *Generator) Reset(seed int64) error {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	m, err := Generate(g.cfg, seed)
	if err != nil {
		return err
	}
	g.m = m
	return nil
}

// Pixels returns the current map colors, or nil before the first Reset.
func (g *Generator) Pixels() []color.RGBA {
	if g.m == nil {
		return nil
	}
	return g.m.Pixels
}

// Map returns the most recently generated map.
func (g *Generator) Map() *Map { return g.m }

// Seed returns the seed of the current map, or the configured seed before
// the first Reset.
func (g *Generator) Seed() int64 {
	if g.m != nil {
		return g.m.Seed
	}
	return g.cfg.Seed
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Parameters describes the generator configuration.
func (g *Generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

var presets = map[string]func() Config{
	"island": DefaultConfig,
	"perlin": PerlinConfig,
}

// PresetConfig returns the base config of the named preset.
func PresetConfig(name string) (Config, bool) {
	base, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return base(), true
}

func init() {
	for name, base := range presets {
		core.Register(name, func(cfg map[string]string) core.Generator {
			return NewGenerator(name, ApplyOverrides(base(), cfg))
		})
	}
}
