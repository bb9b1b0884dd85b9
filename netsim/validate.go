package netsim

import (
	"fmt"
	"math"
)

// validate checks every Config field and returns the per-cluster size
// slice with a shared single size expanded to all clusters.
func (c Config) validate() ([]int, error) {
	if c.Clusters < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrClusterCount, c.Clusters)
	}
	if len(c.ClusterSizes) != 1 && len(c.ClusterSizes) != c.Clusters {
		return nil, fmt.Errorf("%w: got %d sizes for %d clusters",
			ErrClusterSizes, len(c.ClusterSizes), c.Clusters)
	}
	for _, s := range c.ClusterSizes {
		if s < 1 {
			return nil, fmt.Errorf("%w: size %d", ErrClusterSizes, s)
		}
	}
	if c.Vars < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrVariables, c.Vars)
	}
	if c.Obs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrObservations, c.Obs)
	}
	if bad(c.Overlap) {
		return nil, fmt.Errorf("%w: overlap %v", ErrProbability, c.Overlap)
	}
	if bad(c.SwapFraction) {
		return nil, fmt.Errorf("%w: swap fraction %v", ErrProbability, c.SwapFraction)
	}
	if bad(c.EdgeProb) {
		return nil, fmt.Errorf("%w: edge probability %v", ErrProbability, c.EdgeProb)
	}
	if math.IsNaN(c.NoiseSD) || c.NoiseSD < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNoiseSD, c.NoiseSD)
	}
	if c.Topology != Hub && c.Topology != Random {
		return nil, fmt.Errorf("%w: %v", ErrTopology, c.Topology)
	}
	if c.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxAttempts, c.MaxAttempts)
	}

	sizes := make([]int, c.Clusters)
	if len(c.ClusterSizes) == 1 {
		for g := range sizes {
			sizes[g] = c.ClusterSizes[0]
		}
	} else {
		copy(sizes, c.ClusterSizes)
	}
	return sizes, nil
}

// bad reports whether v falls outside the closed unit interval.
func bad(v float64) bool {
	return math.IsNaN(v) || v < 0 || v > 1
}

// attempts resolves the rejection-loop bound, substituting the default
// for the zero value.
func (c Config) attempts() int {
	if c.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

// membership expands per-cluster subject counts into K one-based labels,
// cluster by cluster.
func membership(sizes []int) []int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	labels := make([]int, 0, total)
	for g, s := range sizes {
		for i := 0; i < s; i++ {
			labels = append(labels, g+1)
		}
	}
	return labels
}
