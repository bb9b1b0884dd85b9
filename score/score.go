package score

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/dilernia/RCCM/support"
	"github.com/dilernia/RCCM/wishart"
)

// Model bundles externally fitted cluster precision means, subject
// precision matrices, per-subject weightings, and the Wishart degrees of
// freedom, validated and symmetrized once so repeated scoring never
// re-checks or re-infers anything. A Model shares no state with its
// construction inputs.
type Model struct {
	clusters []*mat.SymDense // cluster-level precision means, order G
	subjects []*mat.SymDense // subject-level precision matrices, order K
	weights  []Weighting     // one per subject
	nu       float64
	vars     int
}

// NewModel assembles a Model from G cluster matrices, K subject matrices,
// K weightings, and the degrees of freedom nu shared by every Wishart
// term. All matrices are symmetrized by transpose-averaging, checked for
// one common order p, and Cholesky-verified positive definite. Returns
// ErrCounts, ErrDimension, ErrCluster, ErrWeights, ErrNotPositiveDefinite,
// or wishart.ErrDegreesOfFreedom when nu ≤ p−1.
func NewModel(clusterPrecs, subjectPrecs []mat.Matrix, weights []Weighting, nu float64) (*Model, error) {
	if len(clusterPrecs) == 0 || len(subjectPrecs) == 0 || len(weights) != len(subjectPrecs) {
		return nil, ErrCounts
	}
	clusters, vars, err := symmetrizeAll(clusterPrecs, 0)
	if err != nil {
		return nil, err
	}
	subjects, _, err := symmetrizeAll(subjectPrecs, vars)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(nu) || nu <= float64(vars-1) {
		return nil, wishart.ErrDegreesOfFreedom
	}
	for _, w := range weights {
		if w.IsHard() {
			if w.cluster > len(clusters) {
				return nil, ErrCluster
			}
		} else if len(w.weights) != len(clusters) {
			return nil, ErrWeights
		}
	}
	ws := make([]Weighting, len(weights))
	copy(ws, weights)

	return &Model{clusters: clusters, subjects: subjects, weights: ws, nu: nu, vars: vars}, nil
}

// symmetrizeAll transpose-averages every matrix, verifies a shared order
// and positive definiteness. wantVars 0 adopts the first matrix's order as
// the reference.
func symmetrizeAll(ms []mat.Matrix, wantVars int) ([]*mat.SymDense, int, error) {
	out := make([]*mat.SymDense, len(ms))
	for i, m := range ms {
		if m == nil {
			return nil, 0, ErrDimension
		}
		r, c := m.Dims()
		if r == 0 || r != c {
			return nil, 0, ErrDimension
		}
		if wantVars == 0 {
			wantVars = r
		}
		if r != wantVars {
			return nil, 0, ErrDimension
		}
		s, err := support.SymmetrizeAverage(m)
		if err != nil {
			return nil, 0, err
		}
		var chol mat.Cholesky
		if !chol.Factorize(s) {
			return nil, 0, ErrNotPositiveDefinite
		}
		out[i] = s
	}

	return out, wantVars, nil
}

// Clusters returns G, the number of cluster-level matrices.
func (m *Model) Clusters() int { return len(m.clusters) }

// Subjects returns K, the number of subject-level matrices.
func (m *Model) Subjects() int { return len(m.subjects) }

// LogLikelihood scores the datasets under the model. Per subject k the
// score is the Gaussian log-likelihood of the dataset's rows under
// N(0, Ωk⁻¹) plus the cluster term: the log Wishart density of Ωk at its
// hard cluster's mean, or, for a soft weighting, the log of the
// weight-averaged natural-scale densities. The soft average is evaluated
// through log-sum-exp so it stays finite when individual densities
// underflow; it is never a linear combination of log-densities. Datasets
// are consumed in subject order. Returns ErrCounts when the dataset count
// differs from K and ErrDimension when a dataset's column count differs
// from p.
//
// Complexity: O(K·(n·p² + G·p³)).
func (m *Model) LogLikelihood(datasets []mat.Matrix) (float64, error) {
	if len(datasets) != len(m.subjects) {
		return 0, ErrCounts
	}
	total := 0.0
	for k := range m.subjects {
		gauss, err := m.gaussianTerm(k, datasets[k])
		if err != nil {
			return 0, err
		}
		cluster, err := m.clusterTerm(k)
		if err != nil {
			return 0, err
		}
		total += gauss + cluster
	}

	return total, nil
}

// gaussianTerm sums the zero-mean Gaussian log-density of every dataset row
// under subject k's precision matrix.
func (m *Model) gaussianTerm(k int, data mat.Matrix) (float64, error) {
	if data == nil {
		return 0, ErrDimension
	}
	n, p := data.Dims()
	if n == 0 || p != m.vars {
		return 0, ErrDimension
	}
	normal, ok := distmv.NewNormalPrecision(make([]float64, p), m.subjects[k], nil)
	if !ok {
		return 0, ErrNotPositiveDefinite
	}
	row := make([]float64, p)
	ll := 0.0
	for i := 0; i < n; i++ {
		mat.Row(row, i, data)
		ll += normal.LogProb(row)
	}

	return ll, nil
}

// clusterTerm evaluates subject k's Wishart mixture contribution on the log
// scale.
func (m *Model) clusterTerm(k int) (float64, error) {
	w := m.weights[k]
	if w.IsHard() {
		return wishart.LogDensity(m.subjects[k], m.clusters[w.cluster-1], m.nu)
	}
	terms := make([]float64, len(m.clusters))
	for g, mean := range m.clusters {
		logf, err := wishart.LogDensity(m.subjects[k], mean, m.nu)
		if err != nil {
			return 0, err
		}
		terms[g] = math.Log(w.weights[g]) + logf
	}

	return floats.LogSumExp(terms), nil
}

// DegreesOfFreedom counts the model's active parameters: entries with
// magnitude above support.DefaultTolerance in the strict lower triangle,
// summed over all K subject matrices and all G cluster matrices. Upper
// halves and diagonals are never counted, so symmetric pairs are not
// double counted.
func (m *Model) DegreesOfFreedom() int {
	dof := 0
	for _, s := range m.subjects {
		dof += activeLower(s)
	}
	for _, c := range m.clusters {
		dof += activeLower(c)
	}

	return dof
}

// activeLower counts strict-lower-triangle entries above the shared
// tolerance.
func activeLower(s *mat.SymDense) int {
	n, _ := s.Dims()
	count := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if math.Abs(s.At(i, j)) > support.DefaultTolerance {
				count++
			}
		}
	}

	return count
}

// AIC is Akaike's information criterion for the model on the given
// datasets: 2·DegreesOfFreedom − 2·LogLikelihood, exactly.
func (m *Model) AIC(datasets []mat.Matrix) (float64, error) {
	ll, err := m.LogLikelihood(datasets)
	if err != nil {
		return 0, err
	}

	return 2*float64(m.DegreesOfFreedom()) - 2*ll, nil
}
