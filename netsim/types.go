package netsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Topology selects how cluster-level networks are wired.
type Topology int

const (
	// Hub splits the p variables into floor(√p) near-equal consecutive
	// groups and wires every group member to its group's first variable,
	// giving p−floor(√p) star edges before the shared-edge override.
	Hub Topology = iota

	// Random wires every variable pair independently with probability
	// EdgeProb.
	Random
)

// String returns the topology's configuration name.
func (t Topology) String() string {
	switch t {
	case Hub:
		return "hub"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// DefaultMaxAttempts bounds the positive-definite repair rejection loops
// when Config.MaxAttempts is zero.
const DefaultMaxAttempts = 100

// Config parameterizes one simulation.
//
// Fields:
//   - Clusters     — G, the number of cluster-level networks (≥1).
//   - ClusterSizes — subjects per cluster: one shared size, or one
//     positive size per cluster (length 1 or G).
//   - Vars         — p, variables per network (≥1).
//   - Obs          — n, observation rows sampled per subject (≥1).
//   - Overlap      — fraction of the topology's edge budget whose status
//     is forced identically into every cluster graph, in [0,1].
//   - SwapFraction — ρ, fraction of a subject's inherited edge count
//     toggled during perturbation, in [0,1].
//   - NoiseSD      — standard deviation of the additive noise on inherited
//     edge values (≥0).
//   - EdgeProb     — Bernoulli presence probability for shared-edge
//     statuses and, under Random topology, for every free pair, in [0,1].
//   - Topology     — Hub or Random.
//   - Seed         — random stream seed; 0 selects a fixed default stream
//     so the zero value still replays identically.
//   - MaxAttempts  — bound on the batch rejection loops; 0 selects
//     DefaultMaxAttempts.
type Config struct {
	Clusters     int
	ClusterSizes []int
	Vars         int
	Obs          int
	Overlap      float64
	SwapFraction float64
	NoiseSD      float64
	EdgeProb     float64
	Topology     Topology
	Seed         uint64
	MaxAttempts  int
}

// DefaultConfig returns the baseline simulation: two clusters of ten
// subjects each, ten variables, a hundred observations per subject,
// half-overlapping hub networks, and light subject-level perturbation.
func DefaultConfig() Config {
	return Config{
		Clusters:     2,
		ClusterSizes: []int{10},
		Vars:         10,
		Obs:          100,
		Overlap:      0.5,
		SwapFraction: 0.1,
		NoiseSD:      0.05,
		EdgeProb:     0.5,
		Topology:     Hub,
		MaxAttempts:  DefaultMaxAttempts,
	}
}

// Result is the generated ground truth. Every matrix is freshly allocated
// and owned by the caller; the simulation retains nothing.
//
// Sibling slices are index-aligned: ClusterGraphs[g] is the network whose
// weighted form is ClusterPrecisions[g]; subject k reads its cluster from
// Membership[k], its network from SubjectGraphs[k], its matrix from
// SubjectPrecisions[k], and its observations from Datasets[k].
type Result struct {
	ClusterGraphs     []*mat.SymDense // G binary adjacency matrices, zero diagonal
	ClusterPrecisions []*mat.SymDense // G strictly positive-definite matrices
	SubjectGraphs     []*mat.SymDense // K binary adjacency matrices, zero diagonal
	SubjectPrecisions []*mat.SymDense // K strictly positive-definite matrices
	Datasets          []*mat.Dense    // K column-centered n×p observation matrices
	Membership        []int           // K cluster labels in 1..G
}
