package support

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// DefaultTolerance is the magnitude below which a matrix entry counts as
// zero: the cutoff for support recovery and for likelihood degrees of
// freedom.
const DefaultTolerance = 1e-3

// Adjacency maps a matrix elementwise onto its support: entry (i,j) of the
// result is 1 when |m(i,j)| > tol and 0 otherwise. Returns ErrEmptyMatrix
// for nil or zero-dimension input and ErrTolerance for a negative or NaN
// tolerance.
//
// Complexity: O(r·c) time and memory.
func Adjacency(m mat.Matrix, tol float64) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrEmptyMatrix
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, ErrTolerance
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	adj := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(m.At(i, j)) > tol {
				adj.Set(i, j, 1)
			}
		}
	}

	return adj, nil
}

// SymmetrizeAverage returns (m + mᵗ)/2 as a symmetric matrix. Returns
// ErrEmptyMatrix for nil or zero-dimension input and ErrNonSquare when the
// row and column counts differ.
//
// Complexity: O(n²) time and memory.
func SymmetrizeAverage(m mat.Matrix) (*mat.SymDense, error) {
	if m == nil {
		return nil, ErrEmptyMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r != c {
		return nil, ErrNonSquare
	}
	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			s.SetSym(i, j, (m.At(i, j)+m.At(j, i))/2)
		}
	}

	return s, nil
}

// CoMembership expands cluster labels into the K×K co-membership matrix:
// entry (i,j) is 1 when labels[i] and labels[j] are both nonzero and equal.
// Label 0 marks an unassigned subject and contributes 0 everywhere, its
// diagonal entry included. Returns ErrNoLabels for an empty vector.
//
// Complexity: O(K²) time and memory.
func CoMembership(labels []int) (*mat.SymDense, error) {
	k := len(labels)
	if k == 0 {
		return nil, ErrNoLabels
	}
	co := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		if labels[i] == 0 {
			continue
		}
		for j := 0; j <= i; j++ {
			if labels[j] == labels[i] {
				co.SetSym(i, j, 1)
			}
		}
	}

	return co, nil
}

// RandIndex measures pairwise agreement between two label vectors: the
// fraction of subject pairs whose co-membership status (together vs apart)
// matches between the two induced co-membership matrices, over all C(K,2)
// pairs. Invariant under relabeling; RandIndex(x, x) == 1. Returns
// ErrLabelLength when the vectors differ in length and ErrTooFewLabels for
// K < 2.
//
// Complexity: O(K²) time, O(K²) memory for the co-membership expansion.
func RandIndex(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLabelLength
	}
	k := len(a)
	if k < 2 {
		return 0, ErrTooFewLabels
	}
	ca, err := CoMembership(a)
	if err != nil {
		return 0, err
	}
	cb, err := CoMembership(b)
	if err != nil {
		return 0, err
	}
	agree := 0
	for i := 1; i < k; i++ {
		for j := 0; j < i; j++ {
			if ca.At(i, j) == cb.At(i, j) {
				agree++
			}
		}
	}

	return float64(agree) / float64(combin.Binomial(k, 2)), nil
}
