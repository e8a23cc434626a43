package render_test

import (
	"path/filepath"
	"testing"

	"github.com/jshap70/computer-vision/internal/link"
	"github.com/jshap70/computer-vision/internal/render"
	"github.com/jshap70/computer-vision/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkMask(t *testing.T, rows ...string) *link.Result {
	t.Helper()
	mask := make([][]bool, len(rows))
	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			mask[r][c] = ch == '#'
		}
	}
	res, err := link.Link(mask, link.Options{MinLength: 1})
	require.NoError(t, err)
	return res
}

func TestOverlay(t *testing.T) {
	res := linkMask(t,
		"###...",
		"......",
		"....#.",
	)
	require.Len(t, res.Chains, 2)

	img := render.Overlay(res)
	b := img.Bounds()
	assert.Equal(t, 6, b.Dx())
	assert.Equal(t, 3, b.Dy())

	// Chain pixels carry their palette color, everything else is black.
	assert.Equal(t, colorutil.Palette(0), img.RGBAAt(0, 0))
	assert.Equal(t, colorutil.Palette(0), img.RGBAAt(2, 0))
	assert.Equal(t, colorutil.Palette(1), img.RGBAAt(4, 2))
	assert.Equal(t, colorutil.Black, img.RGBAAt(3, 1))
	assert.Equal(t, colorutil.Black, img.RGBAAt(5, 2))
}

func TestWritePNG(t *testing.T) {
	res := linkMask(t, "##")
	path := filepath.Join(t.TempDir(), "overlay.png")
	require.NoError(t, render.WritePNG(path, render.Overlay(res)))

	// Non-existent directory fails with a wrapped error.
	err := render.WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), render.Overlay(res))
	assert.Error(t, err)
}
