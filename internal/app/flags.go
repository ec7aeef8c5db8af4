package app

import (
	"flag"
	"fmt"
	"strings"

	"islegen/internal/core"
	"islegen/internal/terrain"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Preset     string
	Scale      int
	Seed       int64
	ConfigPath string
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "island", Scale: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "map preset to generate (island, perlin)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation (0 uses the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML terrain config file")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// Generator builds the configured preset. A config file is decoded on top
// of the preset's base config and the overrides apply last.
func (c *Config) Generator() (core.Generator, error) {
	factory, ok := core.Generators()[c.Preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q: %w", c.Preset, core.ErrInvalidArgument)
	}
	if c.ConfigPath == "" {
		return factory(c.Overrides.Map()), nil
	}
	base, ok := terrain.PresetConfig(c.Preset)
	if !ok {
		return nil, fmt.Errorf("preset %q does not take a config file: %w", c.Preset, core.ErrInvalidArgument)
	}
	cfg, err := terrain.LoadOnto(base, c.ConfigPath)
	if err != nil {
		return nil, err
	}
	return terrain.NewGenerator(c.Preset, terrain.ApplyOverrides(cfg, c.Overrides.Map())), nil
}

type seeder interface {
	Seed() int64
}

// StartSeed returns the -seed flag when it is non-zero, otherwise the seed
// gen is configured with.
func (c *Config) StartSeed(gen core.Generator) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	if s, ok := gen.(seeder); ok {
		return s.Seed()
	}
	return 0
}
