package render

import "image/color"

// FillRGBA copies colors into buf as opaque RGBA bytes, row-major.
func FillRGBA(buf []byte, pixels []color.RGBA) {
	for i, c := range pixels {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 255
	}
}

// Gray maps an elevation in [-1, 1] to a gray level: (v+1)*255/2.
func Gray(v float64) color.RGBA {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	level := uint8((v + 1) * 255 / 2)
	return color.RGBA{R: level, G: level, B: level, A: 255}
}

// GrayPixels converts a slice of elevations with Gray.
func GrayPixels(values []float64) []color.RGBA {
	out := make([]color.RGBA, len(values))
	for i, v := range values {
		out[i] = Gray(v)
	}
	return out
}
