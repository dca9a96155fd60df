package shape

import "shape-selector/internal/palette"

// Result describes one analyzed figure. Numeric fields are zero for the
// Unknown, NoContour and Error outcomes.
type Result struct {
	Area        float64       `json:"area" yaml:"area"`
	HullArea    float64       `json:"hull_area" yaml:"hull_area"`
	BBoxArea    float64       `json:"bbox_area" yaml:"bbox_area"`
	Type        Type          `json:"type" yaml:"type"`
	Vertices    int           `json:"vertices" yaml:"vertices"`
	Circularity float64       `json:"circularity" yaml:"circularity"`
	Color       palette.Color `json:"color" yaml:"color"`

	// Error carries the diagnostic for Type == Error.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Empty is the result for an image with nothing analyzable in it. It is also
// the placeholder for a candidate whose image is missing.
func Empty() Result {
	return Result{Type: Unknown, Color: palette.Unknown}
}

// NoContourResult is the result when no segmentation strategy found a figure.
func NoContourResult() Result {
	r := Empty()
	r.Type = NoContour
	return r
}

// Failed is the result for an image that could not be analyzed.
func Failed(msg string) Result {
	r := Empty()
	r.Type = Error
	r.Error = msg
	return r
}
