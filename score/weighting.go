package score

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// weightSumTol bounds how far a soft weight vector's sum may drift from 1
// before it is rejected; estimators hand over renormalized floats, not
// exact arithmetic.
const weightSumTol = 1e-6

// Weighting states how one subject is assigned across the clusters: either
// hard to a single cluster, or soft with one weight per cluster. The form
// is decided once at construction and never re-inferred from the numbers.
// The zero value is invalid; build weightings through Hard, Soft,
// WeightsFromMatrix, or HardFromLabels.
type Weighting struct {
	cluster int       // 1-based cluster index when hard, 0 when soft
	weights []float64 // per-cluster weights when soft, nil when hard
}

// Hard returns the weighting that assigns a subject wholly to the 1-based
// cluster index. Returns ErrCluster for indices below 1.
func Hard(cluster int) (Weighting, error) {
	if cluster < 1 {
		return Weighting{}, ErrCluster
	}

	return Weighting{cluster: cluster}, nil
}

// Soft returns the weighting carrying one non-negative weight per cluster,
// summing to one. A vector that concentrates all mass on a single cluster
// (an entry exactly 1) collapses to the hard form here, so scoring never
// rescans the numbers. The input slice is copied. Returns ErrWeights for
// empty, negative, NaN, or non-unit-sum input.
func Soft(weights []float64) (Weighting, error) {
	if len(weights) == 0 {
		return Weighting{}, ErrWeights
	}
	sum := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return Weighting{}, ErrWeights
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTol {
		return Weighting{}, ErrWeights
	}
	for g, w := range weights {
		if w == 1 {
			return Weighting{cluster: g + 1}, nil
		}
	}
	cp := make([]float64, len(weights))
	copy(cp, weights)

	return Weighting{weights: cp}, nil
}

// IsHard reports whether the weighting assigns its subject to exactly one
// cluster.
func (w Weighting) IsHard() bool { return w.cluster != 0 }

// Cluster returns the 1-based hard cluster index, or 0 for soft weightings.
func (w Weighting) Cluster() int { return w.cluster }

// Weights returns a copy of the per-cluster weights, or nil for hard
// weightings.
func (w Weighting) Weights() []float64 {
	if w.weights == nil {
		return nil
	}
	cp := make([]float64, len(w.weights))
	copy(cp, w.weights)

	return cp
}

// WeightsFromMatrix classifies every column of a G×K cluster weight matrix
// into a Weighting, one per subject, applying the same hard/soft decision
// as Soft. Returns ErrWeights for a nil or empty matrix, or wrapped with
// the column index for an invalid column.
//
// Complexity: O(G·K).
func WeightsFromMatrix(ws mat.Matrix) ([]Weighting, error) {
	if ws == nil {
		return nil, ErrWeights
	}
	g, k := ws.Dims()
	if g == 0 || k == 0 {
		return nil, ErrWeights
	}
	out := make([]Weighting, k)
	col := make([]float64, g)
	for j := 0; j < k; j++ {
		mat.Col(col, j, ws)
		w, err := Soft(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		out[j] = w
	}

	return out, nil
}

// HardFromLabels converts 1-based membership labels — the generation side's
// ground-truth format — into hard weightings. Returns ErrCounts for an
// empty label vector and ErrCluster when clusters < 1 or a label falls
// outside 1..clusters.
func HardFromLabels(labels []int, clusters int) ([]Weighting, error) {
	if clusters < 1 {
		return nil, ErrCluster
	}
	if len(labels) == 0 {
		return nil, ErrCounts
	}
	out := make([]Weighting, len(labels))
	for k, label := range labels {
		if label < 1 || label > clusters {
			return nil, fmt.Errorf("subject %d label %d: %w", k, label, ErrCluster)
		}
		out[k] = Weighting{cluster: label}
	}

	return out, nil
}
