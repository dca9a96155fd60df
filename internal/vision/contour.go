package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"shape-selector/pkg/geometry"
)

// StrategyResult records what one segmentation strategy found.
type StrategyResult struct {
	Name  string  `json:"name"`
	Area  float64 `json:"area"`
	Found bool    `json:"found"`
}

// Extraction is the outcome of contour extraction for one frame.
type Extraction struct {
	Outline    geometry.Outline
	Area       float64
	Strategy   string           // Name of the winning strategy
	Strategies []StrategyResult // Every strategy, in the order it ran
	Background Background
}

// ExtractOutline runs every segmentation strategy on the frame and returns
// the outline with the largest enclosed area. Each strategy contributes at
// most one outline:
//
//  1. Background subtraction at each of Params.MaskThresholds
//  2. Otsu binarization of the blurred grayscale, inverted then normal
//  3. Canny edges of the blurred grayscale, dilated to close the outline
//
// The largest outline wins regardless of which strategy found it. Returns
// ErrNoForeground when no strategy finds an outline inside the valid area window.
func (c *Classifier) ExtractOutline(f *Frame) (*Extraction, error) {
	p := c.params
	imgArea := f.Area()

	kernelSize := max(p.KernelSize, 1)
	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Point{kernelSize, kernelSize})
	defer kernel.Close()

	ext := &Extraction{}
	consider := func(name string, binary gocv.Mat) {
		outline, area, ok := c.bestFromBinary(binary, kernel, imgArea)
		ext.Strategies = append(ext.Strategies, StrategyResult{Name: name, Area: area, Found: ok})
		logger().Debug("segmentation strategy",
			"strategy", name, "found", ok, "area", area)
		// Strictly larger: on a tie the earlier strategy keeps the win.
		if ok && area > ext.Area {
			ext.Outline = outline
			ext.Area = area
			ext.Strategy = name
		}
	}

	// Strategy 1: background subtraction at multiple thresholds
	ext.Background = EstimateBackground(f.BGR, p.BackgroundPatch)
	dist := newDistanceMap(f.BGR, ext.Background)
	for _, t := range p.MaskThresholds {
		mask, err := dist.mask(t)
		if err != nil {
			return nil, fmt.Errorf("foreground mask at %.0f: %w", t, err)
		}
		consider(fmt.Sprintf("mask-%g", t), mask)
		mask.Close()
	}

	blurSize := oddKernel(p.BlurSize)
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(f.Gray, &blurred, image.Point{blurSize, blurSize}, 0, 0, gocv.BorderDefault)

	// Strategy 2: Otsu on grayscale, both polarities
	for _, v := range []struct {
		name string
		typ  gocv.ThresholdType
	}{
		{"otsu-inv", gocv.ThresholdBinaryInv | gocv.ThresholdOtsu},
		{"otsu", gocv.ThresholdBinary | gocv.ThresholdOtsu},
	} {
		binary := gocv.NewMat()
		gocv.Threshold(blurred, &binary, 0, 255, v.typ)
		consider(v.name, binary)
		binary.Close()
	}

	// Strategy 3: Canny edges, dilated so the figure's boundary closes
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blurred, &edges, float32(p.CannyLow), float32(p.CannyHigh))
	for i := 0; i < p.EdgeDilateIterations; i++ {
		gocv.Dilate(edges, &edges, kernel)
	}
	consider("canny", edges)

	if ext.Outline == nil {
		return ext, ErrNoForeground
	}
	return ext, nil
}

// bestFromBinary closes small gaps in a binary mask, finds its external
// contours and returns the largest one whose area lies strictly inside the
// valid window. The full-image boundary and tiny noise are both rejected.
func (c *Classifier) bestFromBinary(binary, kernel gocv.Mat, imgArea float64) (geometry.Outline, float64, bool) {
	closed := binary.Clone()
	defer closed.Close()

	// Morphological close with N iterations: N dilations, then N erosions
	for i := 0; i < c.params.CloseIterations; i++ {
		gocv.Dilate(closed, &closed, kernel)
	}
	for i := 0; i < c.params.CloseIterations; i++ {
		gocv.Erode(closed, &closed, kernel)
	}

	contours := gocv.FindContours(closed, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	minArea := imgArea * c.params.MinAreaFraction
	maxArea := imgArea * c.params.MaxAreaFraction

	best := -1
	var bestArea float64
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area <= minArea || area >= maxArea {
			continue
		}
		if best < 0 || area > bestArea {
			best = i
			bestArea = area
		}
	}

	if best < 0 || bestArea <= 0 {
		return nil, 0, false
	}
	return geometry.OutlineFromPoints(contours.At(best).ToPoints()), bestArea, true
}
