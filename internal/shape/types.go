// Package shape holds the shape-label vocabulary, the rules that turn
// outline measurements into a label, and the classification result record.
package shape

import (
	"fmt"
	"strings"
)

// Type is a shape label. Besides the named constants, a polygon the rules
// cannot name is labeled "unknown-N" (see UnknownN).
type Type string

const (
	Triangle  Type = "triangle"
	Square    Type = "square"
	Rectangle Type = "rectangle"
	Pentagon  Type = "pentagon"
	Hexagon   Type = "hexagon"
	Heptagon  Type = "heptagon"
	Circle    Type = "circle"
	CircleIsh Type = "circle-ish"

	Unknown   Type = "unknown"
	NoContour Type = "no_contour"
	Error     Type = "error"
)

const unknownPrefix = "unknown-"

// UnknownN returns the label for an unnamed polygon with n vertices.
func UnknownN(n int) Type {
	return Type(fmt.Sprintf("%s%d", unknownPrefix, n))
}

// Family is the ordered polygon family. Neighbors in this order are
// visually similar and are tolerated as near-matches during selection.
var Family = []Type{Triangle, Square, Rectangle, Pentagon, Hexagon, Heptagon}

// FamilyIndex returns t's position in Family, or -1.
func FamilyIndex(t Type) int {
	for i, f := range Family {
		if f == t {
			return i
		}
	}
	return -1
}

// IsCircle reports whether t is a circle variant ("circle" or "circle-ish").
func (t Type) IsCircle() bool {
	return strings.Contains(string(t), string(Circle))
}

// IsAmbiguous reports whether t carries no usable shape information.
func (t Type) IsAmbiguous() bool {
	switch t {
	case "", Unknown, Error, NoContour:
		return true
	}
	return strings.HasPrefix(string(t), unknownPrefix)
}

// Valid reports whether t belongs to the label vocabulary.
func (t Type) Valid() bool {
	switch t {
	case Triangle, Square, Rectangle, Pentagon, Hexagon, Heptagon,
		Circle, CircleIsh, Unknown, NoContour, Error:
		return true
	}
	if rest, ok := strings.CutPrefix(string(t), unknownPrefix); ok {
		var n int
		_, err := fmt.Sscanf(rest, "%d", &n)
		return err == nil && n >= 0 && fmt.Sprint(n) == rest
	}
	return false
}
