// Package wishart evaluates the Wishart density over symmetric
// positive-definite matrices, parameterized by the distribution's mean.
//
// The Wishart distribution relates subject-level precision matrices to a
// cluster-level mean matrix: with mean M = ν·V (V the conventional scale
// matrix) and degrees of freedom ν, larger ν concentrates the density
// around M. Both the evaluation point and the mean are symmetrized by
// transpose-averaging before use, so numerically near-symmetric estimates
// are accepted as-is.
//
// Densities come in log (LogDensity) and natural (Density) scale; mixture
// code should prefer the log scale and combine terms with log-sum-exp.
//
// Errors:
//
//   - ErrDimension: empty, non-square, or mismatched inputs.
//   - ErrDegreesOfFreedom: ν ≤ p−1, where the density degenerates.
//   - ErrNotPositiveDefinite: the point or the mean fails factorization.
package wishart
