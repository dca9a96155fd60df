// Package palette defines the named colors a figure can be classified as,
// each with the HSV ranges (OpenCV scale) that select it.
package palette

// Color is a named palette color.
type Color string

const (
	Red     Color = "red"
	Orange  Color = "orange"
	Yellow  Color = "yellow"
	Green   Color = "green"
	Blue    Color = "blue"
	Purple  Color = "purple"
	White   Color = "white"
	Black   Color = "black"
	Gray    Color = "gray"
	Unknown Color = "unknown"
)

// HSV is an (H, S, V) triple on OpenCV's 8-bit scale: H 0-180, S and V 0-255.
type HSV [3]float64

// Range is an inclusive HSV box.
type Range struct {
	Lower HSV
	Upper HSV
}

// Contains reports whether (h, s, v) lies inside the box.
func (r Range) Contains(h, s, v float64) bool {
	return h >= r.Lower[0] && h <= r.Upper[0] &&
		s >= r.Lower[1] && s <= r.Upper[1] &&
		v >= r.Lower[2] && v <= r.Upper[2]
}

// Entry pairs a color with the union of ranges that select it.
type Entry struct {
	Color  Color
	Ranges []Range
}

// Matches reports whether (h, s, v) falls in any of the entry's ranges.
func (e Entry) Matches(h, s, v float64) bool {
	for _, r := range e.Ranges {
		if r.Contains(h, s, v) {
			return true
		}
	}
	return false
}

// Entries is the palette in declaration order. Order matters: it breaks
// ties in dominant-color counting and fixes keyword precedence when parsing
// instructions. Red wraps the hue circle and needs two ranges.
var Entries = []Entry{
	{Red, []Range{
		{HSV{0, 120, 80}, HSV{10, 255, 255}},
		{HSV{160, 120, 80}, HSV{180, 255, 255}},
	}},
	{Orange, []Range{{HSV{11, 120, 80}, HSV{25, 255, 255}}}},
	{Yellow, []Range{{HSV{26, 120, 80}, HSV{34, 255, 255}}}},
	{Green, []Range{{HSV{35, 80, 60}, HSV{85, 255, 255}}}},
	{Blue, []Range{{HSV{86, 80, 60}, HSV{130, 255, 255}}}},
	{Purple, []Range{{HSV{131, 80, 60}, HSV{159, 255, 255}}}},
	{White, []Range{{HSV{0, 0, 190}, HSV{180, 40, 255}}}},
	{Black, []Range{{HSV{0, 0, 0}, HSV{180, 255, 60}}}},
	{Gray, []Range{{HSV{0, 0, 61}, HSV{180, 40, 189}}}},
}

// Colors returns the palette colors in declaration order.
func Colors() []Color {
	out := make([]Color, len(Entries))
	for i, e := range Entries {
		out[i] = e.Color
	}
	return out
}

// Parse returns the palette color with the given name. "grey" is accepted
// for gray. Unrecognized names yield Unknown and false.
func Parse(name string) (Color, bool) {
	if name == "grey" {
		return Gray, true
	}
	for _, e := range Entries {
		if string(e.Color) == name {
			return e.Color, true
		}
	}
	return Unknown, false
}

// Classify returns the first palette color whose ranges contain (h, s, v),
// or Unknown.
func Classify(h, s, v float64) Color {
	for _, e := range Entries {
		if e.Matches(h, s, v) {
			return e.Color
		}
	}
	return Unknown
}
