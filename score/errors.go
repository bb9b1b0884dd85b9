package score

import "errors"

var (
	// ErrCounts indicates empty or misaligned cluster/subject/weighting/
	// dataset collections.
	ErrCounts = errors.New("score: cluster, subject, weighting, and dataset counts must align and be positive")
	// ErrDimension indicates matrices or dataset columns that disagree on
	// the variable dimension, or an empty matrix.
	ErrDimension = errors.New("score: matrices and dataset columns must share one variable dimension")
	// ErrCluster indicates a hard cluster index outside 1..G.
	ErrCluster = errors.New("score: hard cluster index out of range")
	// ErrWeights indicates a malformed soft weight vector: negative or NaN
	// entries, a sum away from one, or a length that does not span the
	// clusters.
	ErrWeights = errors.New("score: soft weights must be non-negative, sum to one, and span every cluster")
	// ErrNotPositiveDefinite indicates a precision matrix whose Cholesky
	// factorization failed.
	ErrNotPositiveDefinite = errors.New("score: precision matrix is not positive definite")
)
