package netsim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pairs are indexed lexicographically: index i enumerates (lo, hi) with
// lo < hi in the order produced by nested lo/hi loops, which is also the
// order combin.IndexToCombination uses for k=2.

// sharedEdges pins the status of selected variable pairs across every
// cluster graph: positions[i] is a pair index in 0..C(p,2)-1 and
// present[i] tells whether that pair is forced on or forced off.
type sharedEdges struct {
	positions []int
	present   []bool
}

// pairCount returns C(p,2), the number of distinct variable pairs.
func pairCount(p int) int {
	if p < 2 {
		return 0
	}
	return combin.Binomial(p, 2)
}

// indexToPair decodes a pair index into dst as (lo, hi), lo < hi.
func indexToPair(dst []int, idx, p int) {
	combin.IndexToCombination(dst, idx, p, 2)
}

// hubCount returns the number of hub groups, floor(√p).
func hubCount(p int) int {
	return int(math.Sqrt(float64(p)))
}

// edgeBudget returns the topology's nominal edge count: the hub star size
// p−floor(√p), or all C(p,2) pairs under Random.
func edgeBudget(cfg Config) int {
	if cfg.Topology == Hub {
		return cfg.Vars - hubCount(cfg.Vars)
	}
	return pairCount(cfg.Vars)
}

// sampleShared draws the cross-cluster edge constraints: floor(Overlap·budget)
// distinct pair positions, then one Bernoulli(EdgeProb) status per position.
// Positions range over all C(p,2) pairs even under Hub topology.
func sampleShared(cfg Config, rnd *rand.Rand) sharedEdges {
	total := pairCount(cfg.Vars)
	count := int(cfg.Overlap * float64(edgeBudget(cfg)))

	shared := sharedEdges{
		positions: samplePositions(count, total, rnd),
		present:   make([]bool, count),
	}
	coin := distuv.Bernoulli{P: cfg.EdgeProb, Src: rnd}
	for i := range shared.present {
		shared.present[i] = coin.Rand() == 1
	}
	return shared
}

// hubGraph builds the star topology on p variables: floor(√p) consecutive
// groups of near-equal size (earlier groups take the remainder), each wired
// as a star around its first variable.
func hubGraph(p int) *mat.SymDense {
	adj := mat.NewSymDense(p, nil)
	groups := hubCount(p)
	base := p / groups
	extra := p % groups

	start := 0
	for g := 0; g < groups; g++ {
		size := base
		if g < extra {
			size++
		}
		for member := start + 1; member < start+size; member++ {
			adj.SetSym(start, member, 1)
		}
		start += size
	}
	return adj
}

// randomGraph wires each non-shared pair independently with probability
// prob, consuming one draw per free pair in lexicographic order. Shared
// positions are left zero for applyShared to fill.
func randomGraph(p int, prob float64, isShared map[int]bool, rnd *rand.Rand) *mat.SymDense {
	adj := mat.NewSymDense(p, nil)
	coin := distuv.Bernoulli{P: prob, Src: rnd}

	idx := 0
	for lo := 0; lo < p; lo++ {
		for hi := lo + 1; hi < p; hi++ {
			if !isShared[idx] {
				adj.SetSym(lo, hi, coin.Rand())
			}
			idx++
		}
	}
	return adj
}

// applyShared forces the pinned statuses into adj, both ways: a pinned
// present pair is set even if the topology skipped it, and a pinned absent
// pair is cleared even if the topology wired it.
func applyShared(adj *mat.SymDense, shared sharedEdges, p int) {
	pair := make([]int, 2)
	for i, pos := range shared.positions {
		indexToPair(pair, pos, p)
		val := 0.0
		if shared.present[i] {
			val = 1
		}
		adj.SetSym(pair[0], pair[1], val)
	}
}

// buildClusterGraphs materializes the G cluster adjacency matrices: each
// cluster draws its own topology over the free pairs, then receives the
// identical shared-edge statuses.
func buildClusterGraphs(cfg Config, shared sharedEdges, rnd *rand.Rand) []*mat.SymDense {
	isShared := make(map[int]bool, len(shared.positions))
	for _, pos := range shared.positions {
		isShared[pos] = true
	}

	graphs := make([]*mat.SymDense, cfg.Clusters)
	for g := range graphs {
		if cfg.Topology == Hub {
			graphs[g] = hubGraph(cfg.Vars)
		} else {
			graphs[g] = randomGraph(cfg.Vars, cfg.EdgeProb, isShared, rnd)
		}
		applyShared(graphs[g], shared, cfg.Vars)
	}
	return graphs
}
