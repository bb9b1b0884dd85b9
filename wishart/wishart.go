package wishart

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmat"

	"github.com/dilernia/RCCM/support"
)

// LogDensity evaluates the log Wishart density at the point x for the mean
// matrix mean and degrees of freedom nu. The distribution is parameterized
// by its mean, mean = nu·V with V the conventional scale matrix:
//
//	log f(x) = (nu−p−1)/2·log|x| − nu/2·tr(mean⁻¹x)
//	         − [ (nu·p/2)·log 2 + (nu/2)·log|mean/nu| + logΓ_p(nu/2) ]
//
// where logΓ_p is the multivariate log-gamma function. Both x and mean are
// symmetrized by transpose-averaging before use.
//
// Returns ErrDimension for empty, non-square, or mismatched inputs;
// ErrDegreesOfFreedom when nu ≤ p−1; ErrNotPositiveDefinite when the
// symmetrized point or mean fails its Cholesky factorization.
//
// Complexity: O(p³) time, O(p²) memory.
func LogDensity(x, mean mat.Matrix, nu float64) (float64, error) {
	if x == nil || mean == nil {
		return 0, ErrDimension
	}
	p, c := x.Dims()
	if p == 0 || p != c {
		return 0, ErrDimension
	}
	if mr, mc := mean.Dims(); mr != p || mc != p {
		return 0, ErrDimension
	}
	if math.IsNaN(nu) || nu <= float64(p-1) {
		return 0, ErrDegreesOfFreedom
	}

	xs, err := support.SymmetrizeAverage(x)
	if err != nil {
		return 0, err
	}
	ms, err := support.SymmetrizeAverage(mean)
	if err != nil {
		return 0, err
	}

	// Recover the scale matrix of the standard parameterization: V = mean/nu.
	v := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := 0; j <= i; j++ {
			v.SetSym(i, j, ms.At(i, j)/nu)
		}
	}

	dist, ok := distmat.NewWishart(v, nu, nil)
	if !ok {
		return 0, ErrNotPositiveDefinite
	}
	var chol mat.Cholesky
	if !chol.Factorize(xs) {
		return 0, ErrNotPositiveDefinite
	}

	return dist.LogProbSymChol(&chol), nil
}

// Density evaluates the Wishart density on the natural scale; it is
// exp(LogDensity) and shares its error conditions.
func Density(x, mean mat.Matrix, nu float64) (float64, error) {
	logf, err := LogDensity(x, mean, nu)
	if err != nil {
		return 0, err
	}

	return math.Exp(logf), nil
}
