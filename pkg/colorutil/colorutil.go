// Package colorutil provides shared color utilities for rendering and diagnostics.
package colorutil

import (
	"image/color"
	"math"
)

// Swatches for the named palette colors. Each one sits well inside its
// palette HSV range so rendered test figures classify unambiguously.
var (
	Red    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	Orange = color.RGBA{R: 245, G: 140, B: 20, A: 255}
	Yellow = color.RGBA{R: 240, G: 220, B: 30, A: 255}
	Green  = color.RGBA{R: 40, G: 180, B: 60, A: 255}
	Blue   = color.RGBA{R: 30, G: 80, B: 220, A: 255}
	Purple = color.RGBA{R: 140, G: 40, B: 200, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Swatch returns the RGBA swatch for a color name, and false for unknown names.
func Swatch(name string) (color.RGBA, bool) {
	switch name {
	case "red":
		return Red, true
	case "orange":
		return Orange, true
	case "yellow":
		return Yellow, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	case "purple":
		return Purple, true
	case "white":
		return White, true
	case "black":
		return Black, true
	case "gray", "grey":
		return Gray, true
	}
	return color.RGBA{}, false
}

// RGBToHSV converts RGB (0-255) to HSV (OpenCV convention: H 0-180, S 0-255, V 0-255).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC * 255.0 // V in 0-255

	if maxC == 0 {
		s = 0
	} else {
		s = (diff / maxC) * 255.0 // S in 0-255
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	h = h / 2 // Convert to OpenCV's 0-180 range

	return h, s, v
}
