package island

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islegen/internal/core"
)

func flat(t *testing.T, w, h int, v float64) *core.Field {
	t.Helper()
	f, err := core.NewField(w, h)
	require.NoError(t, err)
	for i := range f.Values() {
		f.Values()[i] = v
	}
	return f
}

func TestShapeAddsTanh2AtCentre(t *testing.T) {
	base := flat(t, 21, 21, -0.5)
	out, err := Shape(base, core.Point{X: 10, Y: 10}, 40)
	require.NoError(t, err)
	assert.InDelta(t, -0.5+math.Tanh(2), out.At(10, 10), 1e-12)
	assert.InDelta(t, 0.964, math.Tanh(2), 1e-3)
}

func TestShapeClampsAtOne(t *testing.T) {
	base := flat(t, 5, 5, 0.9)
	out, err := Shape(base, core.Point{X: 2, Y: 2}, 40)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.At(2, 2))
}

func TestShapeLeavesDistantCellsUnchanged(t *testing.T) {
	base := flat(t, 200, 1, -0.3)
	out, err := Shape(base, core.Point{X: 0, Y: 0}, 40)
	require.NoError(t, err)

	radius := Radius(40)
	for x := 0; x < 200; x++ {
		if float64(x) > radius+1 {
			assert.Equal(t, -0.3, out.At(x, 0), "x=%d", x)
		}
	}
	assert.Greater(t, out.At(0, 0), -0.3)
}

func TestShapeNeverLowersValues(t *testing.T) {
	base := flat(t, 64, 48, 0.2)
	out, err := Shape(base, core.Point{X: 30, Y: 20}, 15)
	require.NoError(t, err)
	for i, v := range out.Values() {
		assert.GreaterOrEqual(t, v, base.Values()[i])
	}
}

func TestAltitudeSymmetricAndBounded(t *testing.T) {
	assert.Equal(t, Altitude(3, 4, 10), Altitude(-4, 3, 10))
	assert.InDelta(t, math.Tanh(-2), Altitude(1000, 0, 10), 1e-9)
	assert.InDelta(t, 0, Altitude(int(math.Round(Radius(1000))), 0, 1000), 1e-2)
}

func TestShapeRejectsBadFalloff(t *testing.T) {
	base := flat(t, 3, 3, 0)
	for _, w := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		out, err := Shape(base, core.Point{X: 1, Y: 1}, w)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "falloff %v", w)
	}
}
