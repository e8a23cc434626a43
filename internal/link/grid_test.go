package link_test

import (
	"testing"

	"github.com/jshap70/computer-vision/internal/link"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		mask [][]bool
		err  error
	}{
		{"Nil", nil, link.ErrEmptyGrid},
		{"NoRows", [][]bool{}, link.ErrEmptyGrid},
		{"NoCols", [][]bool{{}}, link.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, false}, {true}}, link.ErrRagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := link.NewEdgeMap(tc.mask)
			require.Nil(t, m)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEdgeMap_StateTransitions(t *testing.T) {
	m, err := link.NewEdgeMap(parseMask(
		".#.",
		"##.",
	))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	assert.Equal(t, link.CellBackground, m.State(0, 0))
	assert.Equal(t, link.CellEdge, m.State(0, 1))
	assert.Zero(t, m.ChainID(0, 1))

	m.Assign(0, 1, 4)
	assert.Equal(t, link.CellLinked, m.State(0, 1))
	assert.Equal(t, 4, m.ChainID(0, 1))

	m.Unassign(0, 1, 4)
	assert.Equal(t, link.CellBackground, m.State(0, 1))
	assert.Zero(t, m.ChainID(0, 1))
}

func TestEdgeMap_InvariantViolationsPanic(t *testing.T) {
	m, err := link.NewEdgeMap(parseMask("##"))
	require.NoError(t, err)
	m.Assign(0, 0, 1)

	assert.Panics(t, func() { m.Assign(0, 0, 2) }, "double assign")
	assert.Panics(t, func() { m.Assign(1, 0, 1) }, "assign out of bounds")
	assert.Panics(t, func() { m.Unassign(0, 0, 9) }, "unassign wrong owner")
	assert.Panics(t, func() { m.Unassign(0, 1, 1) }, "unassign unclaimed cell")
	assert.Panics(t, func() { m.State(0, 5) }, "state out of bounds")
}

func TestEdgeMap_InBounds(t *testing.T) {
	m, err := link.NewEdgeMap(parseMask("...", "..."))
	require.NoError(t, err)

	assert.True(t, m.InBounds(0, 0))
	assert.True(t, m.InBounds(1, 2))
	assert.False(t, m.InBounds(-1, 0))
	assert.False(t, m.InBounds(0, -1))
	assert.False(t, m.InBounds(2, 0))
	assert.False(t, m.InBounds(0, 3))
}

func TestEdgeMap_Labels(t *testing.T) {
	m, err := link.NewEdgeMap(parseMask(
		"#.#",
		".#.",
	))
	require.NoError(t, err)
	m.Assign(0, 0, 1)
	m.Assign(1, 1, 2)

	// (0,2) stays an unclaimed edge and exports as 0.
	assert.Equal(t, [][]int{
		{1, 0, 0},
		{0, 2, 0},
	}, m.Labels())
}

func TestEdgeMap_CopiesInput(t *testing.T) {
	mask := parseMask("#.")
	m, err := link.NewEdgeMap(mask)
	require.NoError(t, err)

	mask[0][1] = true
	assert.Equal(t, link.CellBackground, m.State(0, 1))
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "background", link.CellBackground.String())
	assert.Equal(t, "edge", link.CellEdge.String())
	assert.Equal(t, "linked", link.CellLinked.String())
}
