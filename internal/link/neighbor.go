package link

// neighborOffsets is the branch-priority order for 8-connected walks:
// axis neighbors first (down, right, up, left), then diagonals (down-right,
// down-left, up-left, up-right). At a junction the first unclaimed offset
// wins, so this exact sequence decides which branch a chain follows and is
// observable in the output. Do not reorder.
var neighborOffsets = [8][2]int{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

// NextUnlinked returns the first unclaimed edge neighbor of p in
// branch-priority order, or ok=false when every neighbor is background,
// already linked, or outside the grid. It never mutates the map.
func NextUnlinked(m *EdgeMap, p Point) (Point, bool) {
	for _, d := range neighborOffsets {
		r, c := p.Row+d[0], p.Col+d[1]
		if !m.InBounds(r, c) {
			continue
		}
		if m.State(r, c) == CellEdge {
			return Point{Row: r, Col: c}, true
		}
	}
	return Point{}, false
}
