package render

import (
	"image/color"
	"testing"
)

func TestFillRGBAWritesOpaqueRowMajor(t *testing.T) {
	pixels := []color.RGBA{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6, A: 7}}
	buf := make([]byte, 8)
	FillRGBA(buf, pixels)
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}
}

func TestGrayEndpoints(t *testing.T) {
	cases := map[float64]uint8{-1: 0, 0: 127, 1: 255, -5: 0, 5: 255}
	for v, want := range cases {
		if got := Gray(v); got.R != want || got.G != want || got.B != want || got.A != 255 {
			t.Fatalf("Gray(%v) = %+v, expected level %d", v, got, want)
		}
	}
}
