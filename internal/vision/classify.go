// Package vision analyzes an image of a single geometric figure on a roughly
// uniform background: it segments the figure, labels its shape and names its
// dominant color.
//
// The pipeline runs per image with no shared mutable state, so Classify may
// be called concurrently for different images.
package vision

import (
	"errors"
	"fmt"

	"shape-selector/internal/shape"
)

var (
	// ErrDecode indicates malformed or unsupported image bytes.
	ErrDecode = errors.New("image decode failed")

	// ErrNoForeground indicates that no segmentation strategy found an
	// outline inside the valid area window.
	ErrNoForeground = errors.New("no foreground figure found")

	// ErrDegenerate indicates that the selected outline is too small to classify.
	ErrDegenerate = errors.New("outline area below minimum")
)

// Analysis is the full, diagnostic outcome of classifying one frame.
type Analysis struct {
	Result     shape.Result
	Extraction *Extraction
	Shape      OutlineShape
	Colors     []ColorCount
}

// Classifier runs the pipeline with a fixed set of parameters.
type Classifier struct {
	params Params
}

// NewClassifier creates a Classifier with the given parameters.
func NewClassifier(params Params) *Classifier {
	return &Classifier{params: params}
}

// Params returns the classifier's parameters.
func (c *Classifier) Params() Params {
	return c.params
}

var defaultClassifier = NewClassifier(DefaultParams())

// Classify analyzes an image payload with the default parameters.
// See Classifier.Classify.
func Classify(payload []byte) shape.Result {
	return defaultClassifier.Classify(payload)
}

// Classify analyzes an image payload (raw encoded bytes, base64 text, or a
// data URI). It never fails: decode and internal failures come back as a
// shape.Error result carrying the message, a frame without a figure as
// shape.NoContour, and a degenerate outline as the empty shape.Unknown result.
func (c *Classifier) Classify(payload []byte) (res shape.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = shape.Failed(fmt.Sprintf("internal error: %v", r))
		}
	}()

	data, err := DecodePayload(payload)
	if err != nil {
		return shape.Failed(err.Error())
	}

	frame, err := Decode(data)
	if err != nil {
		return shape.Failed(err.Error())
	}
	defer frame.Close()

	return c.ClassifyFrame(frame)
}

// ClassifyFrame classifies an already decoded frame, folding pipeline
// errors into the result the same way Classify does.
func (c *Classifier) ClassifyFrame(f *Frame) shape.Result {
	a, err := c.Analyze(f)
	switch {
	case err == nil:
		return a.Result
	case errors.Is(err, ErrNoForeground):
		return shape.NoContourResult()
	case errors.Is(err, ErrDegenerate):
		return shape.Empty()
	default:
		return shape.Failed(err.Error())
	}
}

// Analyze runs the full pipeline on a frame and returns every intermediate
// measurement. Returns ErrNoForeground or ErrDegenerate (with a partial
// Analysis) when no usable outline exists.
func (c *Classifier) Analyze(f *Frame) (*Analysis, error) {
	ext, err := c.ExtractOutline(f)
	if err != nil {
		return &Analysis{Result: shape.NoContourResult(), Extraction: ext}, err
	}

	a := &Analysis{Extraction: ext}
	area := ext.Outline.Area()
	if area < c.params.MinOutlineArea {
		a.Result = shape.Empty()
		return a, fmt.Errorf("%w: %.1f < %.1f", ErrDegenerate, area, c.params.MinOutlineArea)
	}

	a.Shape = c.ClassifyOutline(ext.Outline)

	mask := SilhouetteMask(ext.Outline, f.BGR.Rows(), f.BGR.Cols())
	defer mask.Close()
	a.Colors = CountColors(f.BGR, mask)

	a.Result = shape.Result{
		Area:        area,
		HullArea:    ext.Outline.HullArea(),
		BBoxArea:    float64(ext.Outline.BoundingRect().Area()),
		Type:        a.Shape.Type,
		Vertices:    a.Shape.Vertices,
		Circularity: a.Shape.Circularity,
		Color:       dominant(a.Colors),
	}

	logger().Debug("classified figure",
		"strategy", ext.Strategy,
		"type", a.Result.Type,
		"vertices", a.Result.Vertices,
		"circularity", a.Result.Circularity,
		"area", a.Result.Area,
		"color", a.Result.Color)

	return a, nil
}
