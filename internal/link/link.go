// Package link converts a thinned binary edge image into ordered chains of
// 8-connected pixel coordinates, one chain per traced contour.
//
// A single row-major scan seeds a bidirectional walk on every unclaimed
// edge pixel. Branch choice at junctions and chain numbering follow fixed,
// deterministic rules: identical input always produces identical chains and
// labels. Branches not taken at a junction become separate chains;
// reconciling them is left to downstream stages.
package link

import (
	"github.com/jshap70/computer-vision/internal/thin"
	"github.com/jshap70/computer-vision/pkg/geometry"
)

// Thinner reduces a binary mask to a one-pixel-wide skeleton. It must be
// idempotent on already-thinned input.
type Thinner func([][]bool) [][]bool

// Options configures a linking run.
type Options struct {
	// MinLength is the minimum number of points a chain needs to be kept.
	// Shorter chains are erased from the grid entirely. Must be >= 1.
	MinLength int

	// Thinner is applied once to the mask before linking. Nil means the
	// input is already a proper skeleton and is used as-is.
	Thinner Thinner
}

// DefaultOptions returns options suitable for raw edge masks.
func DefaultOptions() Options {
	return Options{
		MinLength: 10,
		Thinner:   thin.ZhangSuen,
	}
}

// Chain is one traced contour: consecutive points are 8-connected and the
// id is the 1-based discovery order.
type Chain struct {
	ID     int     `json:"id"`
	Points []Point `json:"points"`
}

// Len returns the number of points in the chain.
func (ch Chain) Len() int { return len(ch.Points) }

// Bounds returns the bounding rectangle of the chain in (x=col, y=row)
// image coordinates.
func (ch Chain) Bounds() geometry.RectInt {
	if len(ch.Points) == 0 {
		return geometry.RectInt{}
	}
	minR, maxR := ch.Points[0].Row, ch.Points[0].Row
	minC, maxC := ch.Points[0].Col, ch.Points[0].Col
	for _, p := range ch.Points[1:] {
		if p.Row < minR {
			minR = p.Row
		}
		if p.Row > maxR {
			maxR = p.Row
		}
		if p.Col < minC {
			minC = p.Col
		}
		if p.Col > maxC {
			maxC = p.Col
		}
	}
	return geometry.RectInt{
		X:      minC,
		Y:      minR,
		Width:  maxC - minC + 1,
		Height: maxR - minR + 1,
	}
}

// Polyline converts the chain to float (x=col, y=row) points for segment
// fitting stages.
func (ch Chain) Polyline() []geometry.Point2D {
	pts := make([]geometry.Point2D, len(ch.Points))
	for i, p := range ch.Points {
		pts[i] = geometry.Point2D{X: float64(p.Col), Y: float64(p.Row)}
	}
	return pts
}

// Result holds the accepted chains in discovery order and the labeled grid:
// 0 for background, chain id for every pixel of that chain. Ids are dense
// from 1 and match Chains[i].ID == i+1.
type Result struct {
	Chains []Chain
	Labels [][]int
}

// Link traces all edge chains in a binary mask, where true marks an edge
// pixel. The mask is validated and thinned (per opts.Thinner) before any
// grid state is built; the input itself is never modified.
func Link(mask [][]bool, opts Options) (*Result, error) {
	if opts.MinLength < 1 {
		return nil, ErrMinLength
	}
	if err := validateMask(mask); err != nil {
		return nil, err
	}
	if opts.Thinner != nil {
		mask = opts.Thinner(mask)
	}

	m, err := NewEdgeMap(mask)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	id := 1
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.State(r, c) != CellEdge {
				continue
			}
			points, ok := track(m, Point{Row: r, Col: c}, id, opts.MinLength)
			if !ok {
				continue
			}
			res.Chains = append(res.Chains, Chain{ID: id, Points: points})
			id++
		}
	}
	res.Labels = m.Labels()
	return res, nil
}

// LinkInts is Link for callers holding integer rasters; any nonzero value
// counts as an edge pixel.
func LinkInts(grid [][]int, opts Options) (*Result, error) {
	if opts.MinLength < 1 {
		return nil, ErrMinLength
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(grid[0])
	mask := make([][]bool, len(grid))
	for r, row := range grid {
		if len(row) != cols {
			return nil, ErrRagged
		}
		mask[r] = make([]bool, cols)
		for c, v := range row {
			mask[r][c] = v != 0
		}
	}
	return Link(mask, opts)
}
