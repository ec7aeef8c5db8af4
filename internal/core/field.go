package core

import "fmt"

// Field stores a 2D grid of scalar values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a zeroed field with the given dimensions.
func NewField(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("field size %dx%d: %w", w, h, ErrInvalidArgument)
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}, nil
}

// FieldFrom wraps values as a w×h field. The slice is used directly, not copied.
func FieldFrom(w, h int, values []float64) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("field size %dx%d: %w", w, h, ErrInvalidArgument)
	}
	if len(values) != w*h {
		return nil, fmt.Errorf("field size %dx%d needs %d values, got %d: %w", w, h, w*h, len(values), ErrInvalidArgument)
	}
	return &Field{W: w, H: h, data: values}, nil
}

// Size reports the field dimensions.
func (f *Field) Size() Size { return Size{W: f.W, H: f.H} }

// Values exposes the backing slice so callers can read/write values directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Contains reports whether (x, y) lies inside the field.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

// Row returns the slice of values for row y.
func (f *Field) Row(y int) []float64 {
	start := y * f.W
	return f.data[start : start+f.W]
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	return &Field{W: f.W, H: f.H, data: append([]float64(nil), f.data...)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
