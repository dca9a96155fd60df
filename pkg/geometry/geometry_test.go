package geometry

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, side int) Outline {
	return Outline{{x, y}, {x + side, y}, {x + side, y + side}, {x, y + side}}
}

func TestOutlineMeasures(t *testing.T) {
	tests := []struct {
		name      string
		outline   Outline
		area      float64
		perimeter float64
		bbox      RectInt
	}{
		{
			name:      "square",
			outline:   square(10, 20, 40),
			area:      1600,
			perimeter: 160,
			bbox:      RectInt{X: 10, Y: 20, Width: 41, Height: 41},
		},
		{
			name:      "right triangle clockwise",
			outline:   Outline{{0, 0}, {0, 30}, {40, 0}},
			area:      600,
			perimeter: 120,
			bbox:      RectInt{X: 0, Y: 0, Width: 41, Height: 31},
		},
		{
			name:      "degenerate segment",
			outline:   Outline{{0, 0}, {10, 0}},
			area:      0,
			perimeter: 20,
			bbox:      RectInt{X: 0, Y: 0, Width: 11, Height: 1},
		},
		{
			name:    "empty",
			outline: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.area, tt.outline.Area(), 1e-9)
			assert.InDelta(t, tt.perimeter, tt.outline.Perimeter(), 1e-9)
			assert.Equal(t, tt.bbox, tt.outline.BoundingRect())
		})
	}
}

func TestCircularity(t *testing.T) {
	assert.Zero(t, Outline{}.Circularity())

	// Square: 4*pi*s^2 / (4s)^2 = pi/4
	assert.InDelta(t, math.Pi/4, square(0, 0, 100).Circularity(), 1e-9)

	// A finely sampled circle approaches 1.
	var circle Outline
	for i := 0; i < 720; i++ {
		a := float64(i) * 2 * math.Pi / 720
		circle = append(circle, PointInt{
			X: int(math.Round(500 + 400*math.Cos(a))),
			Y: int(math.Round(500 + 400*math.Sin(a))),
		})
	}
	c := circle.Circularity()
	assert.Greater(t, c, 0.95)
	assert.Less(t, c, 1.3)
}

func TestConvexHull(t *testing.T) {
	// L-shape: the hull fills in the notch.
	l := Outline{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	assert.InDelta(t, 300, l.Area(), 1e-9)
	assert.InDelta(t, 350, l.HullArea(), 1e-9)

	hull := ConvexHull(l)
	require.Len(t, hull, 5)
	assert.Equal(t, PointInt{0, 0}, hull[0])

	// A convex outline is its own hull.
	sq := square(5, 5, 10)
	assert.InDelta(t, sq.Area(), sq.HullArea(), 1e-9)

	// Collinear and duplicate points do not change the hull area.
	noisy := Outline{{0, 0}, {0, 0}, {5, 0}, {10, 0}, {10, 10}, {5, 10}, {0, 10}}
	assert.InDelta(t, 100, noisy.HullArea(), 1e-9)
}

func TestOutlineImagePointsRoundTrip(t *testing.T) {
	pts := []image.Point{{1, 2}, {3, 4}, {5, 6}}
	o := OutlineFromPoints(pts)
	assert.Equal(t, Outline{{1, 2}, {3, 4}, {5, 6}}, o)
	assert.Equal(t, pts, o.ImagePoints())
}

func TestRectAspectRatio(t *testing.T) {
	assert.Equal(t, 1.0, RectInt{Width: 10}.AspectRatio())
	assert.Equal(t, 2.0, RectInt{Width: 20, Height: 10}.AspectRatio())
	assert.Equal(t, 200, RectInt{Width: 20, Height: 10}.Area())
}
