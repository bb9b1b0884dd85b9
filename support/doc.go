// Package support provides the small shared utilities the RCCM packages
// and their consumers lean on: edge-support (adjacency) thresholding,
// transpose-average symmetrization, co-membership matrices, and the Rand
// index for comparing clusterings.
//
// The support of a precision matrix is the set of entries whose magnitude
// exceeds a tolerance; it encodes the conditional-independence graph that
// the matrix realizes. DefaultTolerance (0.001) is the cutoff used across
// the module, both for support recovery and for likelihood degrees of
// freedom.
//
// Errors:
//
//   - ErrEmptyMatrix: nil input or a matrix with no rows or columns.
//   - ErrNonSquare: symmetrization of a non-square matrix.
//   - ErrTolerance: negative or NaN tolerance.
//   - ErrNoLabels: empty label vector.
//   - ErrLabelLength: label vectors of differing length.
//   - ErrTooFewLabels: fewer than two labels, so no pairs to compare.
package support
