// Package render draws linked chains into images for visual inspection.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/jshap70/computer-vision/internal/link"
	"github.com/jshap70/computer-vision/pkg/colorutil"
)

// Overlay paints every chain of the result onto a black background, one
// palette color per chain id. The image has the same dimensions as the
// labeled grid.
func Overlay(res *link.Result) *image.RGBA {
	rows := len(res.Labels)
	cols := 0
	if rows > 0 {
		cols = len(res.Labels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetRGBA(x, y, colorutil.Black)
		}
	}
	for _, ch := range res.Chains {
		col := colorutil.Palette(ch.ID - 1)
		for _, p := range ch.Points {
			img.SetRGBA(p.Col, p.Row, col)
		}
	}
	return img
}

// WritePNG writes an image to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}
