package netsim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// magnitudeMin and magnitudeMax bound the absolute value drawn for
	// every active edge weight.
	magnitudeMin = 0.5
	magnitudeMax = 1.0

	// ridgePad is added on top of |λmin| when repairing an indefinite
	// matrix, leaving the repaired minimum eigenvalue at exactly ridgePad.
	ridgePad = 0.2
)

// edgeDraws bundles the two distributions behind one signed edge weight:
// a Uniform(magnitudeMin, magnitudeMax) magnitude and a fair-coin sign.
type edgeDraws struct {
	magnitude distuv.Uniform
	sign      distuv.Bernoulli
}

func newEdgeDraws(rnd *rand.Rand) edgeDraws {
	return edgeDraws{
		magnitude: distuv.Uniform{Min: magnitudeMin, Max: magnitudeMax, Src: rnd},
		sign:      distuv.Bernoulli{P: 0.5, Src: rnd},
	}
}

// value draws one signed weight, magnitude first then sign.
func (d edgeDraws) value() float64 {
	v := d.magnitude.Rand()
	if d.sign.Rand() == 0 {
		v = -v
	}
	return v
}

// weightGraphs turns adjacency into hollow signed weight matrices. Every
// cluster draws a value for each of its active edges in lexicographic pair
// order; clusters after the first then overwrite their shared present
// edges with the previous cluster's values, so a pinned edge carries one
// value through the whole batch.
func weightGraphs(graphs []*mat.SymDense, shared sharedEdges, p int, rnd *rand.Rand) []*mat.SymDense {
	draws := newEdgeDraws(rnd)

	weighted := make([]*mat.SymDense, len(graphs))
	for g, adj := range graphs {
		w := mat.NewSymDense(p, nil)
		for lo := 0; lo < p; lo++ {
			for hi := lo + 1; hi < p; hi++ {
				if adj.At(lo, hi) != 0 {
					w.SetSym(lo, hi, draws.value())
				}
			}
		}
		if g > 0 {
			chainShared(w, weighted[g-1], shared, p)
		}
		weighted[g] = w
	}
	return weighted
}

// chainShared copies the previous cluster's values into w at every shared
// present position. Shared absent positions are zero in both already.
func chainShared(w, prev *mat.SymDense, shared sharedEdges, p int) {
	pair := make([]int, 2)
	for i, pos := range shared.positions {
		if !shared.present[i] {
			continue
		}
		indexToPair(pair, pos, p)
		w.SetSym(pair[0], pair[1], prev.At(pair[0], pair[1]))
	}
}

// ridgeRepair makes s positive definite in place. A matrix whose minimum
// eigenvalue is already positive is left untouched; otherwise the diagonal
// is shifted by |λmin|+ridgePad and the result re-verified. Consumes no
// random draws.
func ridgeRepair(s *mat.SymDense) bool {
	var eig mat.EigenSym
	if !eig.Factorize(s, false) {
		return false
	}
	min := eig.Values(nil)[0]
	if min > 0 {
		return true
	}

	shift := math.Abs(min) + ridgePad
	n, _ := s.Dims()
	for i := 0; i < n; i++ {
		s.SetSym(i, i, s.At(i, i)+shift)
	}

	if !eig.Factorize(s, false) {
		return false
	}
	return eig.Values(nil)[0] > 0
}

// synthesizePrecisions draws weighted matrices for the whole cluster batch
// and ridge-repairs each one, redrawing the entire batch if any repair
// fails, up to attempts times.
func synthesizePrecisions(graphs []*mat.SymDense, shared sharedEdges, p, attempts int, rnd *rand.Rand) ([]*mat.SymDense, error) {
	for attempt := 0; attempt < attempts; attempt++ {
		precs := weightGraphs(graphs, shared, p, rnd)

		ok := true
		for _, prec := range precs {
			if !ridgeRepair(prec) {
				ok = false
				break
			}
		}
		if ok {
			return precs, nil
		}
	}
	return nil, ErrNonConvergence
}
