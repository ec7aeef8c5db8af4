package core

import (
	"math"
	"testing"
)

func TestRNGSameSeedSameSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.Angle(), b.Angle(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRNGAngleRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		a := r.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v outside [0, 2π)", a)
		}
	}
}
