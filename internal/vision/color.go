package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"shape-selector/internal/palette"
	"shape-selector/pkg/geometry"
)

// ColorCount is the number of pixels that fell inside one palette color.
type ColorCount struct {
	Color  palette.Color `json:"color"`
	Pixels int           `json:"pixels"`
}

// CountColors converts the image to HSV and counts, per palette color in
// declaration order, the pixels inside any of that color's ranges. If mask
// is non-empty only pixels set in it are counted; it must match the image size.
func CountColors(bgr gocv.Mat, mask gocv.Mat) []ColorCount {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(bgr, &hsv, gocv.ColorBGRToHSV)

	counts := make([]ColorCount, 0, len(palette.Entries))
	for _, e := range palette.Entries {
		hit := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), hsv.Rows(), hsv.Cols(), gocv.MatTypeCV8UC1)
		for _, r := range e.Ranges {
			m := gocv.NewMat()
			gocv.InRangeWithScalar(hsv,
				gocv.NewScalar(r.Lower[0], r.Lower[1], r.Lower[2], 0),
				gocv.NewScalar(r.Upper[0], r.Upper[1], r.Upper[2], 0),
				&m)
			gocv.BitwiseOr(hit, m, &hit)
			m.Close()
		}
		if !mask.Empty() {
			gocv.BitwiseAnd(hit, mask, &hit)
		}
		counts = append(counts, ColorCount{Color: e.Color, Pixels: gocv.CountNonZero(hit)})
		hit.Close()
	}
	return counts
}

// DominantColor returns the palette color with the most pixels inside the
// mask (or the whole image if mask is empty). Ties keep the color declared
// first; no hits at all yields palette.Unknown.
func DominantColor(bgr gocv.Mat, mask gocv.Mat) palette.Color {
	return dominant(CountColors(bgr, mask))
}

func dominant(counts []ColorCount) palette.Color {
	best, bestN := palette.Unknown, 0
	for _, c := range counts {
		if c.Pixels > bestN {
			best, bestN = c.Color, c.Pixels
		}
	}
	return best
}

// SilhouetteMask returns a single-channel mask of the given size with the
// outline's interior filled with 255.
func SilhouetteMask(outline geometry.Outline, rows, cols int) gocv.Mat {
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC1)
	if len(outline) == 0 {
		return mask
	}

	contours := gocv.NewPointsVectorFromPoints([][]image.Point{outline.ImagePoints()})
	defer contours.Close()
	gocv.DrawContours(&mask, contours, -1, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
	return mask
}
