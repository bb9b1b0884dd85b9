package wishart_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dilernia/RCCM/wishart"
)

// manualLogDensity recomputes the closed form from scratch through
// independent primitives: Cholesky log-determinants, a linear solve for the
// trace term, and the multivariate log-gamma for the normalizer.
func manualLogDensity(t *testing.T, x, mean *mat.SymDense, nu float64) float64 {
	t.Helper()

	p, _ := x.Dims()
	fp := float64(p)

	var cholX, cholM mat.Cholesky
	require.True(t, cholX.Factorize(x), "test point must be positive definite")
	require.True(t, cholM.Factorize(mean), "test mean must be positive definite")

	var minvX mat.Dense
	require.NoError(t, cholM.SolveTo(&minvX, x))

	// log|mean/nu| = log|mean| − p·log(nu)
	norm := nu*fp/2*math.Ln2 + nu/2*(cholM.LogDet()-fp*math.Log(nu)) + mathext.MvLgamma(nu/2, p)

	return (nu-fp-1)/2*cholX.LogDet() - nu/2*mat.Trace(&minvX) - norm
}

// TestLogDensity_MatchesClosedForm cross-checks the evaluator against an
// independent recomputation of the density formula on a 3×3 case.
func TestLogDensity_MatchesClosedForm(t *testing.T) {
	x := mat.NewSymDense(3, []float64{
		2.0, 0.3, -0.2,
		0.3, 1.5, 0.4,
		-0.2, 0.4, 1.8,
	})
	mean := mat.NewSymDense(3, []float64{
		2.2, 0.1, 0.0,
		0.1, 1.7, 0.3,
		0.0, 0.3, 2.0,
	})
	const nu = 5.5

	got, err := wishart.LogDensity(x, mean, nu)
	require.NoError(t, err)

	want := manualLogDensity(t, x, mean, nu)
	assert.InDelta(t, want, got, 1e-10, "closed form disagrees")
}

// TestDensity_IsExpOfLogDensity pins the natural/log scale relation.
func TestDensity_IsExpOfLogDensity(t *testing.T) {
	x := mat.NewSymDense(2, []float64{
		1.4, -0.5,
		-0.5, 2.1,
	})
	mean := mat.NewSymDense(2, []float64{
		1.6, -0.3,
		-0.3, 1.9,
	})
	const nu = 4.0

	logf, err := wishart.LogDensity(x, mean, nu)
	require.NoError(t, err)
	f, err := wishart.Density(x, mean, nu)
	require.NoError(t, err)

	assert.InEpsilon(t, math.Exp(logf), f, 1e-12)
}

// TestLogDensity_ScalarReducesToGamma: for p=1 the Wishart with mean m and
// degrees of freedom nu is Gamma with shape nu/2 and rate nu/(2m).
func TestLogDensity_ScalarReducesToGamma(t *testing.T) {
	const (
		point = 1.7
		m     = 2.5
		nu    = 3.0
	)

	got, err := wishart.LogDensity(
		mat.NewSymDense(1, []float64{point}),
		mat.NewSymDense(1, []float64{m}),
		nu,
	)
	require.NoError(t, err)

	gamma := distuv.Gamma{Alpha: nu / 2, Beta: nu / (2 * m)}
	assert.InDelta(t, gamma.LogProb(point), got, 1e-12)
}

// TestLogDensity_SymmetrizesInputs verifies that an asymmetric point scores
// identically to its explicit transpose-average. The off-diagonal values
// 0.75 and 0.25 average to 0.5 without rounding, so the two evaluation
// points are bit-identical.
func TestLogDensity_SymmetrizesInputs(t *testing.T) {
	asym := mat.NewDense(2, 2, []float64{
		2.0, 0.75,
		0.25, 1.5,
	})
	sym := mat.NewDense(2, 2, []float64{
		2.0, 0.5,
		0.5, 1.5,
	})
	mean := mat.NewSymDense(2, []float64{
		2.0, 0.2,
		0.2, 2.0,
	})

	fromAsym, err := wishart.LogDensity(asym, mean, 4)
	require.NoError(t, err)
	fromSym, err := wishart.LogDensity(sym, mean, 4)
	require.NoError(t, err)

	assert.Equal(t, fromSym, fromAsym, "averaging must happen before evaluation")
}

// TestLogDensity_RejectsNonPositiveDefinite covers the degenerate-density
// paths for both arguments.
func TestLogDensity_RejectsNonPositiveDefinite(t *testing.T) {
	indefinite := mat.NewSymDense(2, []float64{
		1, 2,
		2, 1,
	})
	pd := mat.NewSymDense(2, []float64{
		1, 0,
		0, 1,
	})

	_, err := wishart.LogDensity(indefinite, pd, 4)
	assert.ErrorIs(t, err, wishart.ErrNotPositiveDefinite, "indefinite point must be rejected")

	_, err = wishart.LogDensity(pd, indefinite, 4)
	assert.ErrorIs(t, err, wishart.ErrNotPositiveDefinite, "indefinite mean must be rejected")
}

// TestLogDensity_RejectsLowDegreesOfFreedom: nu must exceed p−1.
func TestLogDensity_RejectsLowDegreesOfFreedom(t *testing.T) {
	pd := mat.NewSymDense(2, []float64{
		1, 0,
		0, 1,
	})

	_, err := wishart.LogDensity(pd, pd, 1)
	assert.ErrorIs(t, err, wishart.ErrDegreesOfFreedom)

	_, err = wishart.LogDensity(pd, pd, math.NaN())
	assert.ErrorIs(t, err, wishart.ErrDegreesOfFreedom)
}

// TestLogDensity_RejectsBadShapes covers nil, non-square, and mismatched
// inputs.
func TestLogDensity_RejectsBadShapes(t *testing.T) {
	square := mat.NewSymDense(2, []float64{1, 0, 0, 1})

	_, err := wishart.LogDensity(nil, square, 4)
	assert.ErrorIs(t, err, wishart.ErrDimension, "nil point")

	_, err = wishart.LogDensity(mat.NewDense(2, 3, nil), square, 4)
	assert.ErrorIs(t, err, wishart.ErrDimension, "non-square point")

	_, err = wishart.LogDensity(square, mat.NewSymDense(3, nil), 4)
	assert.ErrorIs(t, err, wishart.ErrDimension, "order mismatch")
}
