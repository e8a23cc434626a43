package link_test

import (
	"testing"

	"github.com/jshap70/computer-vision/internal/link"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Summary(t *testing.T) {
	res, err := link.Link(parseMask(
		"#####..",
		".......",
		"###....",
		".......",
		"#......",
	), raw(1))
	require.NoError(t, err)
	require.Len(t, res.Chains, 3)

	s := res.Summary()
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1, s.MinLen)
	assert.Equal(t, 5, s.MaxLen)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 3.0, s.Median, 1e-9)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)
}

func TestResult_SummaryEmpty(t *testing.T) {
	res, err := link.Link(parseMask("..."), raw(1))
	require.NoError(t, err)
	assert.Equal(t, link.Summary{}, res.Summary())
}

func TestResult_LabelMatrix(t *testing.T) {
	res, err := link.Link(parseMask(
		"##..",
		"....",
	), raw(1))
	require.NoError(t, err)

	m := res.LabelMatrix()
	require.NotNil(t, m)
	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(0, 2))
	assert.Equal(t, 0.0, m.At(1, 0))
}
