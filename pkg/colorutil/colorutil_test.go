package colorutil_test

import (
	"image/color"
	"testing"

	"github.com/jshap70/computer-vision/pkg/colorutil"

	"github.com/stretchr/testify/assert"
)

func TestHSVToRGB_Primaries(t *testing.T) {
	cases := []struct {
		name    string
		h, s, v float64
		want    color.RGBA
	}{
		{"Red", 0, 1, 1, color.RGBA{R: 255, A: 255}},
		{"Green", 120, 1, 1, color.RGBA{G: 255, A: 255}},
		{"Blue", 240, 1, 1, color.RGBA{B: 255, A: 255}},
		{"White", 0, 0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"Black", 0, 0, 0, color.RGBA{A: 255}},
		{"WrapAround", 360, 1, 1, color.RGBA{R: 255, A: 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, colorutil.HSVToRGB(tc.h, tc.s, tc.v))
		})
	}
}

func TestRGBToHSV_Red(t *testing.T) {
	h, s, v := colorutil.RGBToHSV(255, 0, 0)
	assert.InDelta(t, 0, h, 1e-9)
	assert.InDelta(t, 255, s, 1e-9)
	assert.InDelta(t, 255, v, 1e-9)
}

func TestPalette_Deterministic(t *testing.T) {
	for i := 0; i < 16; i++ {
		assert.Equal(t, colorutil.Palette(i), colorutil.Palette(i))
	}
}

func TestPalette_DistinctNeighbors(t *testing.T) {
	seen := map[color.RGBA]int{}
	for i := 0; i < 32; i++ {
		c := colorutil.Palette(i)
		if prev, dup := seen[c]; dup {
			t.Fatalf("Palette(%d) collides with Palette(%d): %v", i, prev, c)
		}
		seen[c] = i
		assert.NotEqual(t, colorutil.Black, c)
	}
}
