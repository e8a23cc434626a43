package link

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the chain length distribution of a result.
type Summary struct {
	Count  int
	MinLen int
	MaxLen int
	Mean   float64
	StdDev float64
	Median float64
}

// Summary computes length statistics over the accepted chains. A result
// with no chains yields the zero Summary.
func (res *Result) Summary() Summary {
	if len(res.Chains) == 0 {
		return Summary{}
	}

	lengths := make([]float64, len(res.Chains))
	for i, ch := range res.Chains {
		lengths[i] = float64(ch.Len())
	}
	sort.Float64s(lengths)

	s := Summary{
		Count:  len(res.Chains),
		MinLen: int(lengths[0]),
		MaxLen: int(lengths[len(lengths)-1]),
		Mean:   stat.Mean(lengths, nil),
		Median: stat.Quantile(0.5, stat.Empirical, lengths, nil),
	}
	if len(lengths) > 1 {
		s.StdDev = stat.StdDev(lengths, nil)
	}
	return s
}

// LabelMatrix exports the labeled grid as a dense matrix for downstream
// stages that fit segments over matrix data.
func (res *Result) LabelMatrix() *mat.Dense {
	rows := len(res.Labels)
	if rows == 0 {
		return nil
	}
	cols := len(res.Labels[0])
	m := mat.NewDense(rows, cols, nil)
	for r, row := range res.Labels {
		for c, id := range row {
			m.Set(r, c, float64(id))
		}
	}
	return m
}
