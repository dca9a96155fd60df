package synth

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-selector/internal/shape"
	"shape-selector/pkg/colorutil"
)

func TestVerticesCount(t *testing.T) {
	tests := []struct {
		shape shape.Type
		n     int
	}{
		{shape.Triangle, 3},
		{shape.Square, 4},
		{shape.Rectangle, 4},
		{shape.Pentagon, 5},
		{shape.Hexagon, 6},
		{shape.Heptagon, 7},
		{shape.Circle, circleSegments},
	}
	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			pts, err := Vertices(Figure{Shape: tt.shape, Width: 50})
			require.NoError(t, err)
			assert.Len(t, pts, tt.n)
		})
	}
}

func TestVerticesScaleAndRotate(t *testing.T) {
	pts, err := Vertices(Figure{Shape: shape.Rectangle, Width: 40, Height: 20})
	require.NoError(t, err)
	assert.InDelta(t, -20, pts[0][0], 1e-9)
	assert.InDelta(t, -10, pts[0][1], 1e-9)

	rot, err := Vertices(Figure{Shape: shape.Rectangle, Width: 40, Height: 20, Rotation: 90})
	require.NoError(t, err)
	// (-20, -10) rotated 90° clockwise in image coordinates is (10, -20).
	assert.InDelta(t, 10, rot[0][0], 1e-9)
	assert.InDelta(t, -20, rot[0][1], 1e-9)
}

func TestVerticesErrors(t *testing.T) {
	_, err := Vertices(Figure{Shape: "octagon", Width: 10})
	assert.Error(t, err)

	_, err = Vertices(Figure{Shape: shape.Square})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	img, err := Render(
		Canvas{Width: 100, Height: 80, Background: colorutil.White},
		Figure{Shape: shape.Square, Fill: colorutil.Red, Width: 40},
	)
	require.NoError(t, err)

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{R: 220, G: 30, B: 30, A: 255}, img.NRGBAAt(50, 40))

	_, err = Render(Canvas{})
	assert.Error(t, err)
}

func TestRenderPNGAndDataURI(t *testing.T) {
	data, err := RenderPNG(
		Canvas{Width: 32, Height: 32, Background: colorutil.Gray},
		Figure{Shape: shape.Circle, Fill: colorutil.Blue, Width: 16, CenterX: 10, CenterY: 12},
	)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	r, g, b, _ := img.At(10, 12).RGBA()
	assert.Equal(t, []uint32{30, 80, 220}, []uint32{r >> 8, g >> 8, b >> 8})

	uri := DataURI(data)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
