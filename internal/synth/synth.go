// Package synth renders anti-aliased figures on a flat background, the kind
// of image the classifier is built for. Used for calibration and tests.
package synth

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"shape-selector/internal/shape"
)

// circleSegments is the polygon resolution used to render circles.
const circleSegments = 180

// Figure describes one figure to render.
type Figure struct {
	Shape shape.Type
	Fill  color.RGBA

	// Bounding size in pixels before rotation. Height 0 means Height = Width.
	Width  float64
	Height float64

	// Rotation in degrees, clockwise.
	Rotation float64

	// Center in pixels. Zero means the canvas center.
	CenterX, CenterY float64
}

// Canvas is the background the figures are drawn on. A translucent
// Background produces an image with an alpha channel.
type Canvas struct {
	Width, Height int
	Background    color.RGBA
}

// Render draws the figures, in order, onto a new image.
func Render(c Canvas, figures ...Figure) (*image.NRGBA, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	for _, f := range figures {
		pts, err := Vertices(f)
		if err != nil {
			return nil, err
		}
		cx, cy := f.CenterX, f.CenterY
		if cx == 0 && cy == 0 {
			cx, cy = float64(c.Width)/2, float64(c.Height)/2
		}

		z := vector.NewRasterizer(c.Width, c.Height)
		z.DrawOp = draw.Over
		z.MoveTo(float32(cx+pts[0][0]), float32(cy+pts[0][1]))
		for _, p := range pts[1:] {
			z.LineTo(float32(cx+p[0]), float32(cy+p[1]))
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(f.Fill), image.Point{})
	}
	return img, nil
}

// Vertices returns the figure's polygon relative to its center, after
// scaling and rotation.
func Vertices(f Figure) ([][2]float64, error) {
	w := f.Width
	h := f.Height
	if h == 0 {
		h = w
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid figure size %.1fx%.1f", w, h)
	}

	var unit [][2]float64
	switch f.Shape {
	case shape.Square, shape.Rectangle:
		unit = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	case shape.Triangle:
		unit = regular(3)
	case shape.Pentagon:
		unit = regular(5)
	case shape.Hexagon:
		unit = regular(6)
	case shape.Heptagon:
		unit = regular(7)
	case shape.Circle:
		unit = regular(circleSegments)
	default:
		return nil, fmt.Errorf("cannot render shape %q", f.Shape)
	}

	sin, cos := math.Sincos(f.Rotation * math.Pi / 180)
	out := make([][2]float64, len(unit))
	for i, u := range unit {
		x, y := u[0]*w/2, u[1]*h/2
		out[i] = [2]float64{x*cos - y*sin, x*sin + y*cos}
	}
	return out, nil
}

// regular returns a regular n-gon on the unit circle with a vertex pointing up.
func regular(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		pts[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return pts
}

// EncodePNG encodes an image as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders the figures and encodes the result as PNG.
func RenderPNG(c Canvas, figures ...Figure) ([]byte, error) {
	img, err := Render(c, figures...)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// DataURI wraps PNG bytes in a base64 data URI.
func DataURI(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}
