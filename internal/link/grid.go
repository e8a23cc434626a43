package link

import "fmt"

// CellState tags the linking state of one grid cell.
type CellState uint8

const (
	// CellBackground marks a non-edge cell.
	CellBackground CellState = iota
	// CellEdge marks an edge cell not yet claimed by a chain.
	CellEdge
	// CellLinked marks an edge cell claimed by a chain.
	CellLinked
)

func (s CellState) String() string {
	switch s {
	case CellBackground:
		return "background"
	case CellEdge:
		return "edge"
	case CellLinked:
		return "linked"
	default:
		return "unknown"
	}
}

// Point identifies a grid cell by zero-based row and column.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type cell struct {
	state CellState
	chain int32
}

// EdgeMap is the mutable per-pixel state grid shared by the scanner and
// tracker during one linking run. Cells move from edge to linked as chains
// claim them; rejected chains move their cells back to background.
type EdgeMap struct {
	rows, cols int
	cells      []cell
}

// NewEdgeMap builds an EdgeMap from a rectangular binary mask, where true
// marks an edge pixel. The mask is copied; later mutations of the input do
// not affect the map. Returns ErrEmptyGrid or ErrRagged for malformed input.
func NewEdgeMap(mask [][]bool) (*EdgeMap, error) {
	if err := validateMask(mask); err != nil {
		return nil, err
	}
	rows, cols := len(mask), len(mask[0])
	m := &EdgeMap{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
	}
	for r, row := range mask {
		for c, set := range row {
			if set {
				m.cells[r*cols+c].state = CellEdge
			}
		}
	}
	return m, nil
}

func validateMask(mask [][]bool) error {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(mask[0])
	for _, row := range mask {
		if len(row) != cols {
			return ErrRagged
		}
	}
	return nil
}

// Rows returns the grid height.
func (m *EdgeMap) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *EdgeMap) Cols() int { return m.cols }

// InBounds reports whether (r, c) lies within the grid.
func (m *EdgeMap) InBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// State returns the cell state at (r, c). The coordinate must be in bounds;
// callers are expected to pre-check with InBounds.
func (m *EdgeMap) State(r, c int) CellState {
	m.check(r, c)
	return m.cells[r*m.cols+c].state
}

// ChainID returns the id of the chain owning (r, c), or 0 if the cell is
// not linked.
func (m *EdgeMap) ChainID(r, c int) int {
	m.check(r, c)
	return int(m.cells[r*m.cols+c].chain)
}

// Assign claims the edge cell at (r, c) for chain id. The cell must
// currently be an unclaimed edge cell; anything else is a bug in the caller
// and panics rather than silently corrupting chain accounting.
func (m *EdgeMap) Assign(r, c, id int) {
	m.check(r, c)
	cl := &m.cells[r*m.cols+c]
	if cl.state != CellEdge {
		panic(fmt.Sprintf("link: assign chain %d to (%d,%d): cell is %s", id, r, c, cl.state))
	}
	cl.state = CellLinked
	cl.chain = int32(id)
}

// Unassign releases the cell at (r, c) back to background. The cell must
// currently be linked to the given chain id; used only when rolling back a
// rejected chain.
func (m *EdgeMap) Unassign(r, c, id int) {
	m.check(r, c)
	cl := &m.cells[r*m.cols+c]
	if cl.state != CellLinked || cl.chain != int32(id) {
		panic(fmt.Sprintf("link: unassign chain %d at (%d,%d): cell is %s (chain %d)",
			id, r, c, cl.state, cl.chain))
	}
	cl.state = CellBackground
	cl.chain = 0
}

// Labels exports the grid as chain ids: 0 for background and unclaimed
// cells, the owning chain id for linked cells.
func (m *EdgeMap) Labels() [][]int {
	labels := make([][]int, m.rows)
	for r := 0; r < m.rows; r++ {
		labels[r] = make([]int, m.cols)
		for c := 0; c < m.cols; c++ {
			cl := m.cells[r*m.cols+c]
			if cl.state == CellLinked {
				labels[r][c] = int(cl.chain)
			}
		}
	}
	return labels
}

func (m *EdgeMap) check(r, c int) {
	if !m.InBounds(r, c) {
		panic(fmt.Sprintf("link: coordinate (%d,%d) outside %dx%d grid", r, c, m.rows, m.cols))
	}
}
