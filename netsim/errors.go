package netsim

import "errors"

var (
	// ErrClusterCount indicates Clusters < 1.
	ErrClusterCount = errors.New("netsim: cluster count must be at least one")
	// ErrClusterSizes indicates a ClusterSizes slice whose length is neither
	// 1 nor Clusters, or a non-positive size.
	ErrClusterSizes = errors.New("netsim: cluster sizes must be one shared positive size or one positive size per cluster")
	// ErrVariables indicates Vars < 1, or an empty sampling matrix.
	ErrVariables = errors.New("netsim: variable count must be at least one")
	// ErrObservations indicates Obs < 1.
	ErrObservations = errors.New("netsim: observation count must be at least one")
	// ErrProbability indicates Overlap, SwapFraction, or EdgeProb outside [0,1].
	ErrProbability = errors.New("netsim: probabilities must lie in [0,1]")
	// ErrNoiseSD indicates a negative or NaN noise standard deviation.
	ErrNoiseSD = errors.New("netsim: noise standard deviation must be non-negative")
	// ErrTopology indicates a Topology value other than Hub or Random.
	ErrTopology = errors.New("netsim: unknown topology")
	// ErrMaxAttempts indicates a negative attempt bound.
	ErrMaxAttempts = errors.New("netsim: attempt bound must be non-negative")
	// ErrNotPositiveDefinite indicates a sampling precision matrix whose
	// Cholesky factorization failed.
	ErrNotPositiveDefinite = errors.New("netsim: precision matrix is not positive definite")
	// ErrNonConvergence indicates a positive-definite repair batch that was
	// still failing when the attempt bound ran out.
	ErrNonConvergence = errors.New("netsim: positive-definite repair exceeded the attempt bound")
)
