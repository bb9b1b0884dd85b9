package support

import "errors"

var (
	// ErrEmptyMatrix indicates a nil matrix or one with no rows or columns.
	ErrEmptyMatrix = errors.New("support: matrix must have at least one row and one column")
	// ErrNonSquare indicates a non-square input where a square matrix is required.
	ErrNonSquare = errors.New("support: matrix must be square")
	// ErrTolerance indicates a negative or NaN threshold.
	ErrTolerance = errors.New("support: tolerance must be a non-negative number")
	// ErrNoLabels indicates an empty label vector.
	ErrNoLabels = errors.New("support: label vector must not be empty")
	// ErrLabelLength indicates two label vectors of differing length.
	ErrLabelLength = errors.New("support: label vectors must have equal length")
	// ErrTooFewLabels indicates fewer than two labels, leaving no pairs to compare.
	ErrTooFewLabels = errors.New("support: need at least two labels to compare pairs")
)
