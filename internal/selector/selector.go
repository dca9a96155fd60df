package selector

import (
	"math"
	"sort"
	"strconv"

	"shape-selector/internal/palette"
	"shape-selector/internal/shape"
)

// Dimensions holds whatever size attributes are known for a candidate.
// Nil fields are absent.
type Dimensions struct {
	Area   *float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Size   *float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Radius *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// Value returns the candidate's sort area from the first attribute present,
// in priority order: area, size, width*height, pi*radius². Zero if none.
func (d Dimensions) Value() float64 {
	switch {
	case d.Area != nil:
		return *d.Area
	case d.Size != nil:
		return *d.Size
	case d.Width != nil && d.Height != nil:
		return *d.Width * *d.Height
	case d.Radius != nil:
		return math.Pi * *d.Radius * *d.Radius
	}
	return 0
}

// Candidate is one classified figure. Its identity is its position in the
// list handed to Select.
type Candidate struct {
	Type  shape.Type
	Color palette.Color
	Dims  Dimensions
}

// FromResult builds a candidate from a classification result, using the
// measured outline area for size comparisons.
func FromResult(r shape.Result) Candidate {
	area := r.Area
	return Candidate{
		Type:  r.Type,
		Color: r.Color,
		Dims:  Dimensions{Area: &area},
	}
}

// Area returns the candidate's size for ordering.
func (c Candidate) Area() float64 {
	return c.Dims.Value()
}

// Select parses the instruction and returns the index of the best candidate
// as a decimal string. An empty list yields "0".
func Select(instruction string, candidates []Candidate) string {
	if len(candidates) == 0 {
		return "0"
	}
	return strconv.Itoa(ParseInstruction(instruction).Choose(candidates))
}

// Choose returns the index of the best candidate for the instruction, or -1
// for an empty list:
//
//  1. Keep candidates whose label matches the requested shape; keep all when
//     none match or no shape was requested.
//  2. If a color was requested, keep candidates of that color or of unknown
//     color, unless that would leave nothing.
//  3. Order by area, ascending when the smallest figure is preferred and
//     descending otherwise, breaking ties by descending Confidence.
func (in Instruction) Choose(candidates []Candidate) int {
	if len(candidates) == 0 {
		return -1
	}

	pool := make([]int, 0, len(candidates))
	if in.Shape != "" {
		for i, c := range candidates {
			if in.Matches(c.Type) {
				pool = append(pool, i)
			}
		}
	}
	if len(pool) == 0 {
		for i := range candidates {
			pool = append(pool, i)
		}
	}

	if in.Color != "" {
		var narrowed []int
		for _, i := range pool {
			if c := candidates[i].Color; c == in.Color || c == palette.Unknown {
				narrowed = append(narrowed, i)
			}
		}
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}

	sort.SliceStable(pool, func(a, b int) bool {
		ca, cb := candidates[pool[a]], candidates[pool[b]]
		aa, ab := ca.Area(), cb.Area()
		if aa != ab {
			if in.PreferSmallest {
				return aa < ab
			}
			return aa > ab
		}
		return in.Confidence(ca.Type) > in.Confidence(cb.Type)
	})
	return pool[0]
}
