package mcda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConsistencyThreshold is the conventional upper bound on the consistency
// ratio. Judgments with CR above it are flagged for analyst review; the
// derived weights are still returned.
const ConsistencyThreshold = 0.10

// randomIndex holds Saaty's random consistency index by matrix order n for
// n = 1..10. Index 0 is unused.
var randomIndex = [...]float64{0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// randomIndexFor returns RI(n). Orders above ten reuse the order-ten value;
// the published table stops there and the index grows very slowly past it.
func randomIndexFor(n int) float64 {
	if n < 1 {
		return 0
	}
	if n >= len(randomIndex) {
		return randomIndex[len(randomIndex)-1]
	}
	return randomIndex[n]
}

// WeightDerivation is the outcome of AHP weight derivation: the normalized
// weight vector plus the consistency diagnostics of the judgments it came
// from.
type WeightDerivation struct {
	Weights    []float64 `json:"weights"`
	LambdaMax  float64   `json:"lambda_max"`
	CI         float64   `json:"consistency_index"`
	CR         float64   `json:"consistency_ratio"`
	Consistent bool      `json:"consistent"`
}

// BuildComparisonMatrix assembles the full n×n reciprocal matrix from the
// judgments submitted in ComparisonPairs order: diagonal 1, upper triangle
// straight from the vector, lower triangle reciprocals. Judgments must be
// finite and positive; reciprocals are undefined otherwise. The vector
// length must be exactly PairCount(n).
func BuildComparisonMatrix(n int, judgments []float64) (*mat.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientCriteria, n)
	}
	if want := PairCount(n); len(judgments) != want {
		return nil, fmt.Errorf("%w: got %d judgments, want %d for %d criteria",
			ErrMalformedJudgments, len(judgments), want, n)
	}

	m := mat.NewDense(n, n, nil)
	k := 0
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			v := judgments[k]
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, fmt.Errorf("%w: judgment %d is %v, must be a positive finite ratio",
					ErrMalformedJudgments, k, v)
			}
			m.Set(i, j, v)
			m.Set(j, i, 1/v)
			k++
		}
	}
	return m, nil
}

// DeriveWeights converts a completed set of pairwise judgments over the
// chosen criteria into a normalized weight vector with a consistency
// verdict.
//
// Weights come from the normalized-column-average method: each column of the
// comparison matrix is divided by its sum, rows are averaged, and the result
// is renormalized to sum to one. λmax is estimated by averaging the
// elementwise ratio of A·w to w, CI = (λmax−n)/(n−1) for n ≥ 3 (zero below,
// where no inconsistency is possible), and CR = CI/RI(n).
func DeriveWeights(criteria []string, judgments []float64) (*WeightDerivation, error) {
	n := len(criteria)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientCriteria, n)
	}
	m, err := BuildComparisonMatrix(n, judgments)
	if err != nil {
		return nil, err
	}

	// Column sums are strictly positive: every entry is a positive ratio.
	colSums := make([]float64, n)
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		colSums[j] = floats.Sum(mat.Col(col, j, m))
	}

	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		var acc float64
		for j, v := range row {
			acc += v / colSums[j]
		}
		weights[i] = acc / float64(n)
	}
	floats.Scale(1/floats.Sum(weights), weights)

	// λmax from A·w: the principal eigenvalue estimate.
	aw := mat.NewVecDense(n, nil)
	aw.MulVec(m, mat.NewVecDense(n, weights))
	var lambda float64
	for i := 0; i < n; i++ {
		lambda += aw.AtVec(i) / weights[i]
	}
	lambda /= float64(n)

	ci := 0.0
	if n >= 3 {
		// λmax ≥ n holds for every positive reciprocal matrix; clamp the
		// floating-point dip below zero on perfectly consistent input.
		ci = math.Max(0, (lambda-float64(n))/(float64(n)-1))
	}
	cr := 0.0
	if ri := randomIndexFor(n); ri > 0 {
		cr = ci / ri
	}

	return &WeightDerivation{
		Weights:    weights,
		LambdaMax:  lambda,
		CI:         ci,
		CR:         cr,
		Consistent: cr <= ConsistencyThreshold,
	}, nil
}
