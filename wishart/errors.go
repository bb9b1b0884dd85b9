package wishart

import "errors"

var (
	// ErrDimension indicates an empty point, a non-square input, or a
	// point/mean order mismatch.
	ErrDimension = errors.New("wishart: point and mean must be square matrices of equal order")
	// ErrDegreesOfFreedom indicates nu ≤ p−1, outside the density's domain.
	ErrDegreesOfFreedom = errors.New("wishart: degrees of freedom must exceed the matrix order minus one")
	// ErrNotPositiveDefinite indicates a point or mean whose Cholesky
	// factorization failed.
	ErrNotPositiveDefinite = errors.New("wishart: matrix is not positive definite")
)
