// Command linktest runs edge-chain linking on an image and outputs results.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/jshap70/computer-vision/internal/link"
	"github.com/jshap70/computer-vision/internal/mask"
	"github.com/jshap70/computer-vision/internal/render"
	"github.com/jshap70/computer-vision/internal/version"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to edge image (TIFF, PNG, or JPEG)")
	minLen := flag.Int("minlen", link.DefaultOptions().MinLength, "Minimum chain length in pixels")
	cleanup := flag.Int("cleanup", 2, "Morphological cleanup iterations (0 to disable)")
	skeletonize := flag.Bool("skeletonize", false, "Apply a coarse morphological skeleton before thinning (for thick masks)")
	invert := flag.Bool("invert", false, "Invert the mask (use for dark edges on light background)")
	overlayPath := flag.String("overlay", "", "Write colored chain overlay PNG to this path")
	labelsPath := flag.String("labels", "", "Write labeled grid CSV to this path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("linktest", version.String())
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: linktest -image <path> [-minlen 10] [-cleanup 2] [-invert] [-overlay out.png] [-labels out.csv]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	grid := prepareMask(img, *invert, *cleanup)
	if *skeletonize {
		grid = skeletonizeGrid(grid)
	}

	opts := link.DefaultOptions()
	opts.MinLength = *minLen

	res, err := link.Link(grid, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Linking failed: %v\n", err)
		os.Exit(1)
	}

	printReport(res)

	if *overlayPath != "" {
		if err := render.WritePNG(*overlayPath, render.Overlay(res)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote overlay to %s\n", *overlayPath)
	}

	if *labelsPath != "" {
		if err := writeLabelsCSV(*labelsPath, res.Labels); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write labels: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote labels to %s\n", *labelsPath)
	}
}

// prepareMask binarizes and cleans the input image into a bool edge grid.
func prepareMask(img image.Image, invert bool, cleanupIters int) [][]bool {
	gray := mask.FromImage(img)
	defer gray.Close()

	if invert {
		gocv.BitwiseNot(gray, &gray)
	}

	bin := mask.Binarize(gray)
	defer bin.Close()

	if cleanupIters > 0 {
		cleaned := mask.Cleanup(bin, cleanupIters)
		defer cleaned.Close()
		return mask.ToGrid(cleaned)
	}
	return mask.ToGrid(bin)
}

// skeletonizeGrid runs the coarse morphological skeleton over a bool grid.
// Useful when the mask is many pixels wide: it cuts most of the bulk cheaply
// and leaves the thinner less work.
func skeletonizeGrid(grid [][]bool) [][]bool {
	m := mask.FromGrid(grid)
	defer m.Close()

	skel := mask.Skeletonize(m)
	defer skel.Close()
	return mask.ToGrid(skel)
}

func printReport(res *link.Result) {
	s := res.Summary()
	fmt.Printf("\nChains: %d\n", s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Printf("  length min/max: %d/%d\n", s.MinLen, s.MaxLen)
	fmt.Printf("  length mean:    %.1f (stddev %.1f)\n", s.Mean, s.StdDev)
	fmt.Printf("  length median:  %.1f\n", s.Median)

	// Show the longest chains with their extents.
	const topN = 5
	longest := make([]link.Chain, len(res.Chains))
	copy(longest, res.Chains)
	for i := 0; i < len(longest) && i < topN; i++ {
		best := i
		for j := i + 1; j < len(longest); j++ {
			if longest[j].Len() > longest[best].Len() {
				best = j
			}
		}
		longest[i], longest[best] = longest[best], longest[i]
		ch := longest[i]
		b := ch.Bounds()
		fmt.Printf("  #%d: %d points, bounds (%d,%d) %dx%d\n",
			ch.ID, ch.Len(), b.X, b.Y, b.Width, b.Height)
	}
}

func writeLabelsCSV(path string, labels [][]int) error {
	var sb strings.Builder
	for _, row := range labels {
		for c, id := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(id))
		}
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write labels csv: %w", err)
	}
	return nil
}
