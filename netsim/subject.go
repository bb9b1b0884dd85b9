package netsim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// deriveSubjects perturbs each cluster's network once per member subject,
// in membership order. The K subjects form one batch: a failed repair
// rejects the whole batch for a fresh redraw, up to cfg.attempts() times.
func deriveSubjects(graphs, precs []*mat.SymDense, labels []int, cfg Config, rnd *rand.Rand) ([]*mat.SymDense, []*mat.SymDense, error) {
	for attempt := 0; attempt < cfg.attempts(); attempt++ {
		subjGraphs, subjPrecs, ok := perturbSubjects(graphs, precs, labels, cfg, rnd)
		if ok {
			return subjGraphs, subjPrecs, nil
		}
	}
	return nil, nil, ErrNonConvergence
}

// perturbSubjects runs one batch pass. Per subject, in order:
// additive noise on every inherited active edge, floor(SwapFraction·edges)
// distinct pair toggles, then the ridge repair. Reports ok=false as soon
// as one subject's repair fails.
func perturbSubjects(graphs, precs []*mat.SymDense, labels []int, cfg Config, rnd *rand.Rand) ([]*mat.SymDense, []*mat.SymDense, bool) {
	p := cfg.Vars
	noise := distuv.Normal{Mu: 0, Sigma: cfg.NoiseSD, Src: rnd}
	draws := newEdgeDraws(rnd)
	pair := make([]int, 2)

	subjGraphs := make([]*mat.SymDense, len(labels))
	subjPrecs := make([]*mat.SymDense, len(labels))
	for k, label := range labels {
		g := label - 1
		graph := copySym(graphs[g])
		prec := copySym(precs[g])

		// Noise lands on the inherited edges before any toggling, and is
		// drawn even when NoiseSD is zero to keep the stream aligned.
		edges := 0
		for lo := 0; lo < p; lo++ {
			for hi := lo + 1; hi < p; hi++ {
				if graph.At(lo, hi) == 0 {
					continue
				}
				edges++
				prec.SetSym(lo, hi, prec.At(lo, hi)+noise.Rand())
			}
		}

		swaps := int(cfg.SwapFraction * float64(edges))
		for _, pos := range samplePositions(swaps, pairCount(p), rnd) {
			indexToPair(pair, pos, p)
			lo, hi := pair[0], pair[1]
			if graph.At(lo, hi) != 0 {
				graph.SetSym(lo, hi, 0)
				prec.SetSym(lo, hi, 0)
			} else {
				graph.SetSym(lo, hi, 1)
				prec.SetSym(lo, hi, draws.value())
			}
		}

		if !ridgeRepair(prec) {
			return nil, nil, false
		}
		subjGraphs[k] = graph
		subjPrecs[k] = prec
	}
	return subjGraphs, subjPrecs, true
}

func copySym(s *mat.SymDense) *mat.SymDense {
	n, _ := s.Dims()
	out := mat.NewSymDense(n, nil)
	out.CopySym(s)
	return out
}
