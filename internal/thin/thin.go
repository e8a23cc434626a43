// Package thin reduces binary rasters to one-pixel-wide skeletons.
//
// The implementation is the Zhang-Suen two-subiteration algorithm. It
// preserves connectivity, and running it on an already-thinned raster leaves
// the raster unchanged, which makes it safe to apply unconditionally ahead
// of chain linking.
package thin

// ZhangSuen returns a thinned copy of mask. The input must be rectangular;
// pixels outside the grid are treated as background. The input is never
// modified.
func ZhangSuen(mask [][]bool) [][]bool {
	rows := len(mask)
	if rows == 0 {
		return nil
	}
	cols := len(mask[0])

	cur := make([][]bool, rows)
	for r := range mask {
		cur[r] = make([]bool, cols)
		copy(cur[r], mask[r])
	}
	if cols == 0 {
		return cur
	}

	var deletions []int
	for {
		deletions = deletions[:0]

		// Subiteration 1: peel the south-east boundary.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if removable(cur, r, c, true) {
					deletions = append(deletions, r*cols+c)
				}
			}
		}
		for _, idx := range deletions {
			cur[idx/cols][idx%cols] = false
		}
		changed := len(deletions) > 0
		deletions = deletions[:0]

		// Subiteration 2: peel the north-west boundary.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if removable(cur, r, c, false) {
					deletions = append(deletions, r*cols+c)
				}
			}
		}
		for _, idx := range deletions {
			cur[idx/cols][idx%cols] = false
		}

		if !changed && len(deletions) == 0 {
			return cur
		}
	}
}

// removable reports whether the pixel at (r, c) may be deleted in the given
// subiteration without breaking connectivity or shortening a line end.
func removable(mask [][]bool, r, c int, firstPass bool) bool {
	if !mask[r][c] {
		return false
	}

	// Neighborhood P2..P9, clockwise from north.
	p2 := at(mask, r-1, c)
	p3 := at(mask, r-1, c+1)
	p4 := at(mask, r, c+1)
	p5 := at(mask, r+1, c+1)
	p6 := at(mask, r+1, c)
	p7 := at(mask, r+1, c-1)
	p8 := at(mask, r, c-1)
	p9 := at(mask, r-1, c-1)

	b := count(p2) + count(p3) + count(p4) + count(p5) +
		count(p6) + count(p7) + count(p8) + count(p9)
	if b < 2 || b > 6 {
		return false
	}

	// Number of 0->1 transitions around the neighborhood; exactly one means
	// the pixel sits on a simple boundary.
	ring := [9]bool{p2, p3, p4, p5, p6, p7, p8, p9, p2}
	a := 0
	for i := 0; i < 8; i++ {
		if !ring[i] && ring[i+1] {
			a++
		}
	}
	if a != 1 {
		return false
	}

	if firstPass {
		return !(p2 && p4 && p6) && !(p4 && p6 && p8)
	}
	return !(p2 && p4 && p8) && !(p2 && p6 && p8)
}

func at(mask [][]bool, r, c int) bool {
	if r < 0 || r >= len(mask) || c < 0 || c >= len(mask[r]) {
		return false
	}
	return mask[r][c]
}

func count(b bool) int {
	if b {
		return 1
	}
	return 0
}
