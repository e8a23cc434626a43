// Package mask prepares binary edge masks for chain linking using OpenCV.
package mask

import (
	"image"

	"gocv.io/x/gocv"
)

// FromImage converts a Go image.Image to a single-channel grayscale Mat.
func FromImage(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	gray := gocv.NewMat()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	mat.Close()
	return gray
}

// Binarize thresholds a grayscale Mat into a 0/255 binary mask using Otsu's
// method, so the split adapts to the image's intensity histogram.
func Binarize(gray gocv.Mat) gocv.Mat {
	bin := gocv.NewMat()
	gocv.Threshold(gray, &bin, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
	return bin
}

// Cleanup applies morphological close passes to bridge hairline gaps, then
// open passes to remove speckle noise, before thinning.
func Cleanup(mask gocv.Mat, iterations int) gocv.Mat {
	if mask.Empty() {
		return gocv.NewMat()
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()

	cleaned := mask.Clone()
	for i := 0; i < iterations; i++ {
		gocv.MorphologyEx(cleaned, &cleaned, gocv.MorphClose, kernel)
	}
	for i := 0; i < iterations; i++ {
		gocv.MorphologyEx(cleaned, &cleaned, gocv.MorphOpen, kernel)
	}
	return cleaned
}

// Skeletonize reduces a binary mask toward single-pixel-wide lines by
// iterative morphological erosion. The result approximates a skeleton but
// is not guaranteed to be one pixel wide everywhere; the linker's thinning
// pass finishes the job.
func Skeletonize(mask gocv.Mat) gocv.Mat {
	skeleton := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)

	work := mask.Clone()
	defer work.Close()
	eroded := gocv.NewMat()
	defer eroded.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphCross, image.Point{X: 3, Y: 3})
	defer kernel.Close()

	// Each round peels one layer: the pixels of work that do not survive an
	// erode/dilate round trip belong to the skeleton. Stops once the eroded
	// mask is empty.
	for {
		gocv.Erode(work, &eroded, kernel)

		opened := gocv.NewMat()
		gocv.Dilate(eroded, &opened, kernel)

		layer := gocv.NewMat()
		gocv.Subtract(work, opened, &layer)
		opened.Close()

		gocv.BitwiseOr(skeleton, layer, &skeleton)
		layer.Close()

		if gocv.CountNonZero(eroded) == 0 {
			return skeleton
		}
		eroded.CopyTo(&work)
	}
}

// ToGrid converts a single-channel Mat to a bool grid; any nonzero pixel
// becomes true.
func ToGrid(mask gocv.Mat) [][]bool {
	rows, cols := mask.Rows(), mask.Cols()
	grid := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			grid[r][c] = mask.GetUCharAt(r, c) > 0
		}
	}
	return grid
}

// FromGrid converts a bool grid to a 0/255 single-channel Mat.
func FromGrid(grid [][]bool) gocv.Mat {
	rows := len(grid)
	if rows == 0 {
		return gocv.NewMat()
	}
	cols := len(grid[0])
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] {
				mat.SetUCharAt(r, c, 255)
			}
		}
	}
	return mat
}
