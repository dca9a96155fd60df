package selector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"shape-selector/internal/palette"
	"shape-selector/internal/shape"
)

func f(v float64) *float64 { return &v }

func cand(t shape.Type, c palette.Color, area float64) Candidate {
	return Candidate{Type: t, Color: c, Dims: Dimensions{Area: f(area)}}
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		text string
		want Instruction
	}{
		{"", Instruction{PreferLargest: true}},
		{"Click the LARGEST red circle", Instruction{Shape: shape.Circle, Color: palette.Red, PreferLargest: true}},
		{"pick the smallest green triangle", Instruction{Shape: shape.Triangle, Color: palette.Green, PreferSmallest: true}},
		{"the tiny square", Instruction{Shape: shape.Square, PreferSmallest: true}},
		{"minimum hexagon", Instruction{Shape: shape.Hexagon, PreferSmallest: true}},
		{"biggest polygon", Instruction{Shape: Polygon, PreferLargest: true}},
		{"select the blue one", Instruction{Color: palette.Blue, PreferLargest: true}},
		{"smallest or largest", Instruction{PreferSmallest: true, PreferLargest: true}},
		// Keyword order decides, not position in the text.
		{"square next to a circle", Instruction{Shape: shape.Circle, PreferLargest: true}},
		{"white or black", Instruction{Color: palette.White, PreferLargest: true}},
		{"a heptagon", Instruction{Shape: shape.Heptagon, PreferLargest: true}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInstruction(tt.text))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		request  shape.Type
		detected shape.Type
		want     bool
	}{
		{shape.Circle, shape.Circle, true},
		{shape.Circle, shape.CircleIsh, true},
		{shape.Circle, shape.Hexagon, false},
		{shape.Square, shape.Square, true},
		{shape.Square, shape.Rectangle, true},
		{shape.Square, shape.Triangle, true},
		{shape.Square, shape.Pentagon, false},
		{shape.Hexagon, shape.Heptagon, true},
		{shape.Triangle, shape.Circle, false},
		{shape.Square, shape.Unknown, false},
		{shape.Square, shape.UnknownN(4), false},
		{shape.Square, shape.NoContour, false},
		{shape.Square, shape.Error, false},
		{shape.Square, "", false},
		{Polygon, shape.Pentagon, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.request)+"/"+string(tt.detected), func(t *testing.T) {
			assert.Equal(t, tt.want, Instruction{Shape: tt.request}.Matches(tt.detected))
		})
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		request  shape.Type
		detected shape.Type
		want     float64
	}{
		{"", shape.Unknown, 1.0},
		{"", shape.Pentagon, 1.0},
		{shape.Circle, shape.CircleIsh, 1.0},
		{shape.Square, shape.Square, 1.0},
		{shape.Square, shape.Rectangle, 0.7},
		{shape.Pentagon, shape.Hexagon, 0.7},
		{shape.Square, shape.Hexagon, 0},
		{shape.Circle, shape.Square, 0},
		{shape.Square, shape.UnknownN(9), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.request)+"/"+string(tt.detected), func(t *testing.T) {
			assert.Equal(t, tt.want, Instruction{Shape: tt.request}.Confidence(tt.detected))
		})
	}
}

func TestDimensionsValue(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		want float64
	}{
		{"none", Dimensions{}, 0},
		{"area wins", Dimensions{Area: f(5), Size: f(7), Width: f(2), Height: f(3), Radius: f(1)}, 5},
		{"size before box", Dimensions{Size: f(7), Width: f(2), Height: f(3)}, 7},
		{"width times height", Dimensions{Width: f(2), Height: f(3), Radius: f(10)}, 6},
		{"width alone is ignored", Dimensions{Width: f(2), Radius: f(2)}, 4 * math.Pi},
		{"radius", Dimensions{Radius: f(3)}, 9 * math.Pi},
		{"zero area is still present", Dimensions{Area: f(0), Size: f(7)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.dims.Value(), 1e-9)
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		candidates  []Candidate
		want        string
	}{
		{
			name:        "largest red circle",
			instruction: "largest red circle",
			candidates: []Candidate{
				cand(shape.Triangle, palette.Blue, 50),
				cand(shape.Circle, palette.Red, 30),
				cand(shape.Circle, palette.Red, 90),
			},
			want: "2",
		},
		{
			name:        "adjacent polygon beats unrelated one",
			instruction: "smallest square",
			candidates: []Candidate{
				cand(shape.Pentagon, palette.Green, 10),
				cand(shape.Rectangle, palette.Green, 80),
			},
			want: "1",
		},
		{
			name:        "empty list",
			instruction: "anything",
			candidates:  nil,
			want:        "0",
		},
		{
			name:        "no match falls back to every candidate",
			instruction: "largest triangle",
			candidates: []Candidate{
				cand(shape.Circle, palette.Red, 30),
				cand(shape.Unknown, palette.Unknown, 60),
				cand(shape.Hexagon, palette.Red, 40),
			},
			want: "1",
		},
		{
			name:        "unknown color is never excluded",
			instruction: "largest red square",
			candidates: []Candidate{
				cand(shape.Square, palette.Red, 20),
				cand(shape.Square, palette.Unknown, 70),
				cand(shape.Square, palette.Blue, 90),
			},
			want: "1",
		},
		{
			name:        "color narrowing skipped when it empties the pool",
			instruction: "smallest purple circle",
			candidates: []Candidate{
				cand(shape.Circle, palette.Red, 50),
				cand(shape.Circle, palette.Blue, 20),
				cand(shape.Square, palette.Purple, 5),
			},
			want: "1",
		},
		{
			name:        "equal area tie broken by confidence",
			instruction: "largest square",
			candidates: []Candidate{
				cand(shape.Rectangle, palette.Red, 40),
				cand(shape.Square, palette.Red, 40),
			},
			want: "1",
		},
		{
			name:        "full tie keeps original order",
			instruction: "circle",
			candidates: []Candidate{
				cand(shape.Triangle, palette.Red, 10),
				cand(shape.Circle, palette.Red, 40),
				cand(shape.CircleIsh, palette.Red, 40),
			},
			want: "1",
		},
		{
			name:        "smallest wins over largest when both are named",
			instruction: "not the largest, the smallest",
			candidates: []Candidate{
				cand(shape.Square, palette.Red, 40),
				cand(shape.Square, palette.Red, 10),
			},
			want: "1",
		},
		{
			name:        "dimensions without measured area",
			instruction: "biggest",
			candidates: []Candidate{
				{Type: shape.Unknown, Color: palette.Unknown, Dims: Dimensions{Radius: f(3)}},
				{Type: shape.Unknown, Color: palette.Unknown, Dims: Dimensions{Width: f(5), Height: f(5)}},
			},
			want: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.instruction, tt.candidates))
		})
	}
}

func TestChooseEmpty(t *testing.T) {
	assert.Equal(t, -1, ParseInstruction("circle").Choose(nil))
}

func TestFromResult(t *testing.T) {
	r := shape.Result{Area: 123, Type: shape.Hexagon, Color: palette.Orange}
	c := FromResult(r)
	assert.Equal(t, shape.Hexagon, c.Type)
	assert.Equal(t, palette.Orange, c.Color)
	assert.Equal(t, 123.0, c.Area())

	r.Area = 5
	assert.Equal(t, 123.0, c.Area(), "candidate does not alias the result")
}
