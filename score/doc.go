// Package score rates externally fitted random covariance clustering
// models against observed data through a mixture-Wishart log-likelihood
// and Akaike's information criterion.
//
// What:
//
//   - Weighting: per-subject cluster assignment, hard (one cluster) or
//     soft (one weight per cluster), decided once at construction.
//   - Model: validated bundle of cluster precision means, subject
//     precision matrices, weightings, and Wishart degrees of freedom.
//   - Model.LogLikelihood: per-subject Gaussian data term plus Wishart
//     cluster term, summed over subjects.
//   - Model.DegreesOfFreedom / Model.AIC: active-parameter count and
//     2·dof − 2·logLik.
//
// Why:
//
//   - Tuning-parameter searches and gap-statistic routines compare fits
//     across candidate cluster counts and penalties; they need one number
//     per candidate, computed identically every time.
//
// Soft weightings average the cluster densities on the natural scale and
// log the average (via log-sum-exp); they never combine log-densities
// linearly.
//
// Errors:
//
//   - ErrCounts: empty or misaligned cluster/subject/weighting/dataset
//     collections.
//   - ErrDimension: matrices or dataset columns disagreeing on the
//     variable dimension.
//   - ErrCluster: hard cluster index outside 1..G.
//   - ErrWeights: malformed soft weight vector.
//   - ErrNotPositiveDefinite: a precision matrix failing factorization.
//   - wishart.ErrDegreesOfFreedom: nu ≤ p−1.
package score
