package core

import "image/color"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Center returns the midpoint of the size using integer division.
func (s Size) Center() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Generator defines the minimal contract a map preset must implement.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Pixels() []color.RGBA
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}
