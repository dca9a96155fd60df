package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shape-selector/internal/palette"
)

func TestLabel(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name        string
		vertices    int
		aspect      float64
		circularity float64
		want        Type
	}{
		{"triangle", 3, 1.1, 0.6, Triangle},
		{"square", 4, 1.0, 0.78, Square},
		{"square at lower aspect bound", 4, 0.78, 0.78, Square},
		{"square at upper aspect bound", 4, 1.28, 0.75, Square},
		{"rectangle just past upper bound", 4, 1.2801, 0.75, Rectangle},
		{"rectangle just below lower bound", 4, 0.7799, 0.75, Rectangle},
		{"wide rectangle", 4, 2.0, 0.6, Rectangle},
		{"tall rectangle", 4, 0.5, 0.6, Rectangle},
		{"pentagon", 5, 1.0, 0.86, Pentagon},
		{"hexagon", 6, 1.1, 0.87, Hexagon},
		{"heptagon", 7, 1.0, 0.87, Heptagon},
		{"many vertices round", 8, 1.0, 0.8, Circle},
		{"many vertices irregular", 12, 1.0, 0.5, CircleIsh},
		{"no vertices round", 2, 1.0, 0.75, Circle},
		{"no vertices irregular", 2, 1.0, 0.3, UnknownN(2)},
		{"zero vertices", 0, 1.0, 0, UnknownN(0)},
		{"override pentagon", 5, 1.0, 0.9, Circle},
		{"override square", 4, 1.0, 0.88, Circle},
		{"override keeps circle-ish untouched", 9, 1.0, 0.7, CircleIsh},
		{"just below override", 6, 1.0, 0.8799, Hexagon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Label(tt.vertices, tt.aspect, tt.circularity))
		})
	}
}

func TestCircleIshAboveOverrideIsNotPromoted(t *testing.T) {
	// circle-ish only arises below CircleMin, which is below the override,
	// so custom rules are needed to exercise the "already a circle variant" guard.
	r := Rules{SquareAspectMin: 0.78, SquareAspectMax: 1.28, CircleMin: 0.95, CircleOverride: 0.9}
	assert.Equal(t, CircleIsh, r.Label(10, 1.0, 0.92))
}

func TestAmbiguity(t *testing.T) {
	ambiguous := []Type{"", Unknown, Error, NoContour, UnknownN(2), "unknown-11"}
	for _, a := range ambiguous {
		assert.True(t, a.IsAmbiguous(), "%q", a)
	}
	clear := []Type{Triangle, Square, Rectangle, Pentagon, Hexagon, Heptagon, Circle, CircleIsh}
	for _, c := range clear {
		assert.False(t, c.IsAmbiguous(), "%q", c)
	}
}

func TestIsCircle(t *testing.T) {
	assert.True(t, Circle.IsCircle())
	assert.True(t, CircleIsh.IsCircle())
	assert.False(t, Square.IsCircle())
	assert.False(t, Unknown.IsCircle())
}

func TestFamilyIndex(t *testing.T) {
	assert.Equal(t, 0, FamilyIndex(Triangle))
	assert.Equal(t, 2, FamilyIndex(Rectangle))
	assert.Equal(t, 5, FamilyIndex(Heptagon))
	assert.Equal(t, -1, FamilyIndex(Circle))
	assert.Equal(t, -1, FamilyIndex("polygon"))
}

func TestValid(t *testing.T) {
	for _, v := range []Type{Triangle, Circle, CircleIsh, Unknown, NoContour, Error, UnknownN(0), UnknownN(2)} {
		assert.True(t, v.Valid(), "%q", v)
	}
	for _, v := range []Type{"", "octagon", "unknown-", "unknown-x", "unknown--1", "unknown-02"} {
		assert.False(t, v.Valid(), "%q", v)
	}
}

func TestResultConstructors(t *testing.T) {
	e := Empty()
	assert.Equal(t, Unknown, e.Type)
	assert.Equal(t, palette.Unknown, e.Color)
	assert.Zero(t, e.Area)

	nc := NoContourResult()
	assert.Equal(t, NoContour, nc.Type)
	assert.Zero(t, nc.Circularity)

	f := Failed("boom")
	assert.Equal(t, Error, f.Type)
	assert.Equal(t, "boom", f.Error)
	assert.Zero(t, f.Vertices)
}
