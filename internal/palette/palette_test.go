package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shape-selector/pkg/colorutil"
)

func TestSwatchesLandInTheirRanges(t *testing.T) {
	for _, c := range Colors() {
		t.Run(string(c), func(t *testing.T) {
			sw, ok := colorutil.Swatch(string(c))
			if !assert.True(t, ok) {
				return
			}
			h, s, v := colorutil.RGBToHSV(float64(sw.R), float64(sw.G), float64(sw.B))
			assert.Equal(t, c, Classify(h, s, v), "hsv=(%.1f, %.1f, %.1f)", h, s, v)
		})
	}
}

func TestRedWrapsHue(t *testing.T) {
	assert.Equal(t, Red, Classify(2, 200, 200))
	assert.Equal(t, Red, Classify(175, 200, 200))
	assert.Equal(t, Purple, Classify(150, 200, 200))
}

func TestClassifyUnknown(t *testing.T) {
	// Mid saturation, mid value: no palette box covers it.
	assert.Equal(t, Unknown, Classify(60, 60, 150))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Red, true},
		{"gray", Gray, true},
		{"grey", Gray, true},
		{"magenta", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestDeclarationOrder(t *testing.T) {
	assert.Equal(t, []Color{Red, Orange, Yellow, Green, Blue, Purple, White, Black, Gray}, Colors())
}
