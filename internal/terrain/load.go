package terrain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file. Fields the file omits keep their
// DefaultConfig values.
func Load(path string) (Config, error) {
	return LoadOnto(DefaultConfig(), path)
}

// LoadOnto reads a YAML config file on top of base.
func LoadOnto(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseOnto(base, data)
}

// Parse decodes YAML config data on top of DefaultConfig and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	return ParseOnto(DefaultConfig(), data)
}

// ParseOnto decodes YAML config data on top of base and validates it.
func ParseOnto(base Config, data []byte) (Config, error) {
	cfg := base
	if base.Trees != nil {
		trees := *base.Trees
		cfg.Trees = &trees
	}
	cfg.Elevation.Layers = append([]Layer(nil), base.Elevation.Layers...)
	cfg.Resources = append([]ResourceConfig(nil), base.Resources...)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
