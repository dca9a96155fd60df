// Package selector picks, from an ordered list of classified figures, the one
// that best satisfies a free-text instruction such as "click the smallest red
// triangle".
package selector

import (
	"strings"

	"shape-selector/internal/palette"
	"shape-selector/internal/shape"
)

// Polygon is the generic shape keyword. It never matches a detected label,
// so an instruction asking for "a polygon" falls back to every candidate.
const Polygon shape.Type = "polygon"

// shapeKeywords is searched in order; the first keyword found wins.
var shapeKeywords = []shape.Type{
	shape.Circle,
	shape.Square,
	shape.Triangle,
	shape.Rectangle,
	shape.Hexagon,
	shape.Pentagon,
	shape.Heptagon,
	Polygon,
}

var (
	smallestWords = []string{"smallest", "tiny", "minimum"}
	largestWords  = []string{"largest", "biggest", "maximum"}
)

// Instruction is the parsed form of an instruction text. Zero Shape or Color
// means none was requested.
type Instruction struct {
	Shape          shape.Type    `json:"shape,omitempty"`
	Color          palette.Color `json:"color,omitempty"`
	PreferSmallest bool          `json:"prefer_smallest"`
	PreferLargest  bool          `json:"prefer_largest"`
}

// ParseInstruction extracts the requested shape, color and size preference
// by case-insensitive substring search. It never fails: text without any
// keyword yields an Instruction that prefers the largest figure.
func ParseInstruction(text string) Instruction {
	text = strings.ToLower(text)

	var in Instruction
	for _, k := range shapeKeywords {
		if strings.Contains(text, string(k)) {
			in.Shape = k
			break
		}
	}
	for _, c := range palette.Colors() {
		if strings.Contains(text, string(c)) {
			in.Color = c
			break
		}
	}
	in.PreferSmallest = containsAny(text, smallestWords)
	in.PreferLargest = containsAny(text, largestWords)
	if !in.PreferSmallest && !in.PreferLargest {
		in.PreferLargest = true
	}
	return in
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Matches reports whether a detected label satisfies the requested shape.
// Ambiguous labels never match. A request for a circle matches any circle
// variant; otherwise the request must be contained in the label or be its
// neighbor in the polygon family.
func (in Instruction) Matches(detected shape.Type) bool {
	if detected.IsAmbiguous() {
		return false
	}
	if in.Shape == shape.Circle {
		return detected.IsCircle()
	}
	if strings.Contains(string(detected), string(in.Shape)) {
		return true
	}
	return familyDistance(in.Shape, detected) == 1
}

// Confidence scores how well a detected label fits the requested shape:
// 1.0 for no request or a direct match, 0.7 for a family neighbor and 0
// otherwise. It only breaks ties between equally sized candidates.
func (in Instruction) Confidence(detected shape.Type) float64 {
	if in.Shape == "" {
		return 1.0
	}
	if detected.IsAmbiguous() {
		return 0
	}
	if in.Shape == shape.Circle {
		if detected.IsCircle() {
			return 1.0
		}
	} else if strings.Contains(string(detected), string(in.Shape)) {
		return 1.0
	}
	if familyDistance(in.Shape, detected) == 1 {
		return 0.7
	}
	return 0
}

// familyDistance returns how far apart two labels are in shape.Family, or
// -1 if either is not a family member.
func familyDistance(a, b shape.Type) int {
	i, j := shape.FamilyIndex(a), shape.FamilyIndex(b)
	if i < 0 || j < 0 {
		return -1
	}
	if i > j {
		return i - j
	}
	return j - i
}
