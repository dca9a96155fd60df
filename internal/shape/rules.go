package shape

// Rules holds the thresholds that map outline measurements to a label.
type Rules struct {
	// Bounding-box width/height range, inclusive, for a 4-vertex outline to
	// count as a square rather than a rectangle.
	SquareAspectMin float64 `yaml:"square_aspect_min"`
	SquareAspectMax float64 `yaml:"square_aspect_max"`

	// Circularity at or above which a many-vertex (or vertex-less) outline is a circle.
	CircleMin float64 `yaml:"circle_min"`

	// Circularity at or above which any non-circle label is forced to circle.
	// Anti-aliased circles often approximate to 5-7 vertices.
	CircleOverride float64 `yaml:"circle_override"`
}

// DefaultRules returns the standard labeling thresholds.
func DefaultRules() Rules {
	return Rules{
		SquareAspectMin: 0.78,
		SquareAspectMax: 1.28,
		CircleMin:       0.72,
		CircleOverride:  0.88,
	}
}

// Label returns the shape label for an outline with the given voted vertex
// count, bounding-box aspect ratio (width/height) and circularity.
func (r Rules) Label(vertices int, aspect, circularity float64) Type {
	var t Type
	switch {
	case vertices == 3:
		t = Triangle
	case vertices == 4:
		if aspect >= r.SquareAspectMin && aspect <= r.SquareAspectMax {
			t = Square
		} else {
			t = Rectangle
		}
	case vertices == 5:
		t = Pentagon
	case vertices == 6:
		t = Hexagon
	case vertices == 7:
		t = Heptagon
	case vertices >= 8:
		if circularity >= r.CircleMin {
			t = Circle
		} else {
			t = CircleIsh
		}
	default:
		if circularity >= r.CircleMin {
			t = Circle
		} else {
			t = UnknownN(vertices)
		}
	}

	if circularity >= r.CircleOverride && !t.IsCircle() {
		t = Circle
	}
	return t
}
