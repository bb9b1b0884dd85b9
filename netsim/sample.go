package netsim

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// SampleDataset draws n observations from the zero-mean Gaussian whose
// precision matrix is prec, then centers every column to exact zero mean.
// Column variances are left as sampled. A nil src falls back to gonum's
// global source; pass a seeded source for reproducibility.
func SampleDataset(prec mat.Symmetric, n int, src rand.Source) (*mat.Dense, error) {
	if prec == nil {
		return nil, fmt.Errorf("%w: nil precision matrix", ErrVariables)
	}
	p, _ := prec.Dims()
	if p < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrVariables, p)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrObservations, n)
	}

	sym, isSym := prec.(*mat.SymDense)
	if !isSym {
		s := mat.NewSymDense(p, nil)
		s.CopySym(prec)
		sym = s
	}
	normal, ok := distmv.NewNormalPrecision(make([]float64, p), sym, src)
	if !ok {
		return nil, ErrNotPositiveDefinite
	}

	data := mat.NewDense(n, p, nil)
	row := make([]float64, p)
	for i := 0; i < n; i++ {
		normal.Rand(row)
		data.SetRow(i, row)
	}
	centerColumns(data)
	return data, nil
}

// centerColumns subtracts each column's sample mean in place.
func centerColumns(m *mat.Dense) {
	n, p := m.Dims()
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, m)
		floats.AddConst(-stat.Mean(col, nil), col)
		m.SetCol(j, col)
	}
}
