package compose

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islegen/internal/core"
	"islegen/internal/noise"
	pkgcore "islegen/pkg/core"
)

func field(t *testing.T, w, h int, values ...float64) *core.Field {
	t.Helper()
	f, err := core.FieldFrom(w, h, values)
	require.NoError(t, err)
	return f
}

func TestCombineWeightedSum(t *testing.T) {
	a := field(t, 2, 2, 1, 0.5, -1, 0)
	b := field(t, 2, 2, 1, 0.5, 0.5, 0.25)

	out, err := Combine(a, b, 1.25)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.6, 0.8, -0.4, 0.2}, out.Values(), 1e-12)
}

func TestCombineDoesNotClamp(t *testing.T) {
	a := field(t, 1, 1, 1)
	out, err := Combine(a, a, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.At(0, 0))
}

func TestCombineDimensionMismatch(t *testing.T) {
	shapes := []core.Size{{W: 1, H: 1}, {W: 2, H: 1}, {W: 1, H: 2}, {W: 3, H: 3}}
	for _, sa := range shapes {
		for _, sb := range shapes {
			if sa == sb {
				continue
			}
			a, _ := core.NewField(sa.W, sa.H)
			b, _ := core.NewField(sb.W, sb.H)
			out, err := Combine(a, b, 1)
			assert.Nil(t, out)
			require.ErrorIs(t, err, core.ErrDimensionMismatch)

			var mismatch *core.DimensionMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, sa, mismatch.A)
			assert.Equal(t, sb, mismatch.B)
		}
	}
}

func TestCombineRejectsDegenerateWeight(t *testing.T) {
	a := field(t, 1, 1, 0.3)
	for _, w := range []float64{0, math.NaN(), math.Inf(1)} {
		_, err := Combine(a, a, w)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "weight %v", w)
	}
}

func TestCombineSelfAtHalfWeightIsIdentity(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		a, err := noise.GenerateField(33, 17, 5, 2, pkgcore.NewRNG(seed))
		require.NoError(t, err)
		out, err := Combine(a, a, 2)
		require.NoError(t, err)
		assert.Equal(t, a.Values(), out.Values())
	}
}

func TestCombineLeavesInputsUntouched(t *testing.T) {
	a := field(t, 2, 1, 0.1, 0.2)
	b := field(t, 2, 1, 0.3, 0.4)
	_, err := Combine(a, b, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, a.Values())
	assert.Equal(t, []float64{0.3, 0.4}, b.Values())
}

func TestApplyContrastBoundedAndMonotonic(t *testing.T) {
	f := field(t, 5, 1, -3, -0.2, 0, 0.2, 3)
	out := ApplyContrast(f)
	prev := math.Inf(-1)
	for _, v := range out.Values() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
		assert.Greater(t, v, prev)
		prev = v
	}
	assert.Equal(t, 0.0, out.At(2, 0))
	assert.Equal(t, -3.0, f.At(0, 0))
}

func TestApplyContrastStableAtSaturation(t *testing.T) {
	f := field(t, 2, 1, 1, -1)
	out := ApplyContrast(f)
	assert.InDelta(t, 1, out.At(0, 0), 1e-3)
	assert.InDelta(t, -1, out.At(1, 0), 1e-3)
}
