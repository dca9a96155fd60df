package vision

import (
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// Background is an estimated background color in (B, G, R) order.
type Background [3]float64

// EstimateBackground samples square patches at the four corners of a BGR
// image and returns their mean color. The patch side is
// min(patch, rows/4, cols/4), at least one pixel. Corner means are combined
// weighted by the number of pixels each patch contributed.
func EstimateBackground(bgr gocv.Mat, patch int) Background {
	rows, cols := bgr.Rows(), bgr.Cols()
	r := min(patch, rows/4, cols/4)
	if r < 1 {
		r = 1
	}
	r = min(r, rows, cols)

	pix := bgr.ToBytes()
	corners := [4][2]int{
		{0, 0},
		{0, cols - r},
		{rows - r, 0},
		{rows - r, cols - r},
	}

	var channelMeans [3][]float64
	weights := make([]float64, 0, len(corners))
	for _, c := range corners {
		var sum [3]float64
		count := 0
		for y := c[0]; y < c[0]+r; y++ {
			for x := c[1]; x < c[1]+r; x++ {
				i := (y*cols + x) * 3
				sum[0] += float64(pix[i])
				sum[1] += float64(pix[i+1])
				sum[2] += float64(pix[i+2])
				count++
			}
		}
		weights = append(weights, float64(count))
		for ch := 0; ch < 3; ch++ {
			channelMeans[ch] = append(channelMeans[ch], sum[ch]/float64(count))
		}
	}

	var bg Background
	for ch := 0; ch < 3; ch++ {
		bg[ch] = stat.Mean(channelMeans[ch], weights)
	}
	return bg
}

// distanceMap holds each pixel's Euclidean color distance from the
// background, so several thresholds can be applied without rescanning.
type distanceMap struct {
	rows, cols int
	dist       []float64
}

func newDistanceMap(bgr gocv.Mat, bg Background) *distanceMap {
	rows, cols := bgr.Rows(), bgr.Cols()
	pix := bgr.ToBytes()
	dist := make([]float64, rows*cols)
	for i := range dist {
		db := float64(pix[i*3]) - bg[0]
		dg := float64(pix[i*3+1]) - bg[1]
		dr := float64(pix[i*3+2]) - bg[2]
		dist[i] = math.Sqrt(db*db + dg*dg + dr*dr)
	}
	return &distanceMap{rows: rows, cols: cols, dist: dist}
}

// mask returns a binary Mat: 255 where distance > threshold, else 0.
func (d *distanceMap) mask(threshold float64) (gocv.Mat, error) {
	out := make([]byte, len(d.dist))
	for i, v := range d.dist {
		if v > threshold {
			out[i] = 255
		}
	}
	return matFromBytes(d.rows, d.cols, gocv.MatTypeCV8UC1, out)
}

// ForegroundMask marks pixels whose color lies farther than threshold from
// the background color. Works for white, black, gray or colored backgrounds.
func ForegroundMask(bgr gocv.Mat, bg Background, threshold float64) (gocv.Mat, error) {
	return newDistanceMap(bgr, bg).mask(threshold)
}
