package link

// track builds one chain outward from seed in both directions and claims
// its cells for id.
//
// The forward walk follows NextUnlinked from the seed until it dead-ends,
// then the partial chain is reversed and a backward walk restarts from the
// seed; since the forward branch is already claimed, the walk can only
// extend along the opposite branch. The final order runs from the far
// forward end through the seed to the far backward end.
//
// At a junction only the highest-priority branch is followed; the others
// stay unclaimed and seed their own chains later in the scan. Chains
// shorter than minLength are rolled back to background and reported as not
// produced, so their cells are never offered to a later seed.
func track(m *EdgeMap, seed Point, id, minLength int) ([]Point, bool) {
	m.Assign(seed.Row, seed.Col, id)
	points := []Point{seed}

	for tip := seed; ; {
		next, ok := NextUnlinked(m, tip)
		if !ok {
			break
		}
		m.Assign(next.Row, next.Col, id)
		points = append(points, next)
		tip = next
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	for tip := seed; ; {
		next, ok := NextUnlinked(m, tip)
		if !ok {
			break
		}
		m.Assign(next.Row, next.Col, id)
		points = append(points, next)
		tip = next
	}

	if len(points) < minLength {
		for _, p := range points {
			m.Unassign(p.Row, p.Col, id)
		}
		return nil, false
	}
	return points, true
}
