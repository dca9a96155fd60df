package vision

import "shape-selector/internal/shape"

// Params holds the tuning parameters of the classification pipeline.
// See DefaultParams for the values the pipeline was calibrated with.
type Params struct {
	// Background-distance thresholds, tried in priority order. Several are
	// used to hedge against backgrounds of different contrast.
	MaskThresholds []float64 `yaml:"mask_thresholds"`

	// Maximum side of the square corner patches sampled for the background color.
	BackgroundPatch int `yaml:"background_patch"`

	// Elliptical structuring element size and iteration counts
	KernelSize           int `yaml:"kernel_size"`
	CloseIterations      int `yaml:"close_iterations"`
	EdgeDilateIterations int `yaml:"edge_dilate_iterations"`

	// Gaussian blur applied before Otsu and Canny
	BlurSize int `yaml:"blur_size"`

	// Canny hysteresis thresholds
	CannyLow  float64 `yaml:"canny_low"`
	CannyHigh float64 `yaml:"canny_high"`

	// Valid outline area as a fraction of the frame, both exclusive.
	// Rejects noise specks and near-full-frame inverted segmentations.
	MinAreaFraction float64 `yaml:"min_area_fraction"`
	MaxAreaFraction float64 `yaml:"max_area_fraction"`

	// Outlines smaller than this (pixels²) are treated as empty.
	MinOutlineArea float64 `yaml:"min_outline_area"`

	// Polygon approximation tolerances, as fractions of the perimeter, that
	// each cast one vertex-count vote.
	EpsilonFractions []float64 `yaml:"epsilon_fractions"`

	// Label thresholds
	Shape shape.Rules `yaml:"shape"`
}

// DefaultParams returns the default pipeline parameters.
func DefaultParams() Params {
	return Params{
		MaskThresholds:  []float64{20, 35, 50, 15},
		BackgroundPatch: 8,

		KernelSize:           3,
		CloseIterations:      2,
		EdgeDilateIterations: 3,

		BlurSize:  3,
		CannyLow:  30,
		CannyHigh: 100,

		MinAreaFraction: 0.003,
		MaxAreaFraction: 0.90,
		MinOutlineArea:  10,

		EpsilonFractions: []float64{0.01, 0.015, 0.02, 0.03, 0.04, 0.05},

		Shape: shape.DefaultRules(),
	}
}

// WithMaskThresholds returns a copy of params with custom background-distance thresholds.
func (p Params) WithMaskThresholds(thresholds ...float64) Params {
	p.MaskThresholds = append([]float64(nil), thresholds...)
	return p
}

// WithAreaFractions returns a copy of params with a custom valid-area window.
func (p Params) WithAreaFractions(minFrac, maxFrac float64) Params {
	p.MinAreaFraction = minFrac
	p.MaxAreaFraction = maxFrac
	return p
}

// WithShapeRules returns a copy of params with custom labeling thresholds.
func (p Params) WithShapeRules(r shape.Rules) Params {
	p.Shape = r
	return p
}

// oddKernel forces a positive odd size, as OpenCV requires for blur kernels.
func oddKernel(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		size++
	}
	return size
}
