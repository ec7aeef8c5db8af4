package classify

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islegen/internal/core"
)

func uniform(t *testing.T, w, h int, v float64) *core.Field {
	t.Helper()
	f, err := core.NewField(w, h)
	require.NoError(t, err)
	for i := range f.Values() {
		f.Values()[i] = v
	}
	return f
}

func TestRoughnessBorderIsZero(t *testing.T) {
	f := uniform(t, 4, 4, 0)
	f.Set(0, 0, 1)
	f.Set(3, 2, -1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 0 || y == 0 || x == 3 || y == 3 {
				assert.Equal(t, 0.0, Roughness(f, x, y), "(%d,%d)", x, y)
			}
		}
	}
}

func TestRoughnessSumsAxisNeighbours(t *testing.T) {
	f, err := core.FieldFrom(3, 3, []float64{
		9, 0.1, 9,
		0.4, 0.2, -0.3,
		9, 0.5, 9,
	})
	require.NoError(t, err)
	// |0.1-0.2| + |-0.3-0.2| + |0.5-0.2| + |0.4-0.2|
	assert.InDelta(t, 0.1+0.5+0.3+0.2, Roughness(f, 1, 1), 1e-12)
}

func TestClassifyWaterGradient(t *testing.T) {
	c := &Classifier{Elevation: uniform(t, 3, 3, -0.5)}
	assert.Equal(t, color.RGBA{R: 20, G: 80, B: 150, A: 255}, c.Classify(1, 1))

	c = &Classifier{Elevation: uniform(t, 3, 3, -1)}
	assert.Equal(t, color.RGBA{R: 10, G: 60, B: 50, A: 255}, c.Classify(1, 1))
}

func TestClassifyBeachAndGrass(t *testing.T) {
	c := &Classifier{Elevation: uniform(t, 3, 3, 0)}
	cat, col := c.Categorize(1, 1)
	assert.Equal(t, CategoryBeach, cat)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 20, A: 255}, col)

	c = &Classifier{Elevation: uniform(t, 3, 3, 0.5)}
	cat, col = c.Categorize(1, 1)
	assert.Equal(t, CategoryGrass, cat)
	assert.Equal(t, color.RGBA{R: 15, G: 175, B: 20, A: 255}, col)
}

func TestClassifyForestNeedsTreeLayer(t *testing.T) {
	elev := uniform(t, 3, 3, 0.5)
	c := &Classifier{Elevation: elev}
	assert.False(t, c.HasTrees())
	cat, _ := c.Categorize(1, 1)
	assert.Equal(t, CategoryGrass, cat)

	c.Trees = uniform(t, 3, 3, 0.3)
	cat, col := c.Categorize(1, 1)
	assert.Equal(t, CategoryForest, cat)
	assert.Equal(t, color.RGBA{R: 15, G: 125, B: 20, A: 255}, col)

	c.Trees = uniform(t, 3, 3, 0.1)
	cat, _ = c.Categorize(1, 1)
	assert.Equal(t, CategoryGrass, cat, "tree cover must exceed 0.1")
}

func TestClassifyRockRules(t *testing.T) {
	cases := []struct {
		name      string
		elevation float64
		rough     float64
		want      Category
	}{
		{"steep lowland", 0.05, 0.3, CategoryRock},
		{"steep water stays water", -0.2, 0.9, CategoryWater},
		{"highland moderate relief", 0.5, 0.2, CategoryRock},
		{"lowland moderate relief", 0.3, 0.2, CategoryGrass},
		{"highland smooth", 0.5, 0.1, CategoryGrass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Classifier{
				Elevation: uniform(t, 3, 3, tc.elevation),
				Roughness: func(*core.Field, int, int) float64 { return tc.rough },
			}
			cat, col := c.Categorize(1, 1)
			assert.Equal(t, tc.want, cat)
			if tc.want == CategoryRock {
				assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, col)
			}
		})
	}
}

func TestRockOutranksForest(t *testing.T) {
	c := &Classifier{
		Elevation: uniform(t, 3, 3, 0.6),
		Trees:     uniform(t, 3, 3, 1),
		Roughness: func(*core.Field, int, int) float64 { return 0.5 },
	}
	cat, _ := c.Categorize(1, 1)
	assert.Equal(t, CategoryRock, cat)
}

func TestResourceRespectsExclusionRadius(t *testing.T) {
	const size = 40
	ore := color.RGBA{R: 180, G: 90, B: 60, A: 255}
	c := &Classifier{
		Elevation: uniform(t, size, size, 0.5),
		Centre:    core.Point{X: 20, Y: 20},
		Resources: []ResourceLayer{{
			Name:        "iron",
			Field:       uniform(t, size, size, 0.9),
			MinDistance: 10,
			MinValue:    0.6,
			Color:       ore,
		}},
	}
	ref := ReferencePoint(c.Centre)
	assert.Equal(t, core.Point{X: 10, Y: 10}, ref)

	cat, _ := c.Categorize(15, 14) // distance 9
	assert.Equal(t, CategoryGrass, cat)

	cat, col := c.Categorize(15, 15) // distance 10
	assert.Equal(t, CategoryResource, cat)
	assert.Equal(t, ore, col)

	cat, _ = c.Categorize(20, 20) // the centre itself is 20 away from the reference point
	assert.Equal(t, CategoryResource, cat)
}

func TestResourceFirstMatchingLayerWins(t *testing.T) {
	first := color.RGBA{R: 1, A: 255}
	second := color.RGBA{R: 2, A: 255}
	c := &Classifier{
		Elevation: uniform(t, 3, 3, 0.5),
		Resources: []ResourceLayer{
			{Name: "low", Field: uniform(t, 3, 3, 0.2), MinValue: 0.5, Color: first},
			{Name: "high", Field: uniform(t, 3, 3, 0.8), MinValue: 0.5, Color: second},
			{Name: "also", Field: uniform(t, 3, 3, 0.9), MinValue: 0.5, Color: first},
		},
	}
	assert.Equal(t, second, c.Classify(1, 1))
}

func TestColorsCoversEveryCell(t *testing.T) {
	elev, err := core.FieldFrom(3, 2, []float64{-0.5, 0.05, 0.5, 0.5, 0.05, -0.5})
	require.NoError(t, err)
	c := &Classifier{Elevation: elev}
	pixels, cats, err := Colors(c)
	require.NoError(t, err)
	require.Len(t, pixels, 6)
	assert.Equal(t, []Category{
		CategoryWater, CategoryBeach, CategoryGrass,
		CategoryGrass, CategoryBeach, CategoryWater,
	}, cats)
	for i, p := range pixels {
		x, y := i%3, i/3
		assert.Equal(t, c.Classify(x, y), p)
	}
}

func TestColorsRejectsMismatchedLayers(t *testing.T) {
	elev := uniform(t, 4, 3, 0.5)

	_, _, err := Colors(&Classifier{Elevation: elev, Trees: uniform(t, 2, 3, 0.9)})
	var mismatch *core.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, core.Size{W: 2, H: 3}, mismatch.B)

	_, _, err = Colors(&Classifier{Elevation: elev, Resources: []ResourceLayer{
		{Name: "iron", Field: uniform(t, 4, 2, 0.9)},
	}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, _, err = Colors(&Classifier{Elevation: elev, Resources: []ResourceLayer{{Name: "iron"}}})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, _, err = Colors(&Classifier{})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCategoryString(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Categories {
		names[c.String()] = true
	}
	assert.Len(t, names, len(Categories))
	assert.Equal(t, "unknown", Category(200).String())
}
