package mcda

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// scoreEpsilon bounds the closeness difference below which two alternatives
// count as tied and keep their input order.
const scoreEpsilon = 1e-9

// RankedAlternative is one row of a final ranking. Rank is the 1-based
// position after sorting by score descending.
type RankedAlternative struct {
	AlternativeID string  `json:"alternative_id"`
	Name          string  `json:"name,omitempty"`
	Score         float64 `json:"score"`
	Rank          int     `json:"rank"`
}

// TOPSISRanking is the outcome of ranking one decision matrix: alternatives
// ordered best-first plus the weighted-space reference points and any
// normalization warnings.
type TOPSISRanking struct {
	Rankings  []RankedAlternative
	Ideal     []float64
	AntiIdeal []float64
	Warnings  []Warning
}

// RankTOPSIS ranks the alternatives of a decision matrix by relative
// closeness to the ideal solution. The matrix is vector-normalized and
// weighted, per-criterion ideal and anti-ideal points are picked according
// to criterion direction, and each alternative scores S−/(S+ + S−) from its
// Euclidean distances to the two points. An alternative coinciding with
// both points scores 0.5. Scores within scoreEpsilon of each other keep
// their input order.
//
// Weights must align positionally with dm.Criteria and are assumed already
// validated (non-negative, summing to one).
func RankTOPSIS(dm *DecisionMatrix, weights []float64) (*TOPSISRanking, error) {
	rows, cols := dm.Values.Dims()
	if len(weights) != cols {
		return nil, fmt.Errorf("%w: got %d weights for %d criteria",
			ErrMalformedWeights, len(weights), cols)
	}

	normalized, warnings := Normalize(dm)

	weighted := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			weighted.Set(i, j, normalized.At(i, j)*weights[j])
		}
	}

	ideal := make([]float64, cols)
	antiIdeal := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, weighted)
		lo, hi := floats.Min(col), floats.Max(col)
		if dm.Criteria[j].Direction == Cost {
			ideal[j], antiIdeal[j] = lo, hi
		} else {
			ideal[j], antiIdeal[j] = hi, lo
		}
	}

	scores := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := weighted.RawRowView(i)
		sPlus := floats.Distance(row, ideal, 2)
		sMinus := floats.Distance(row, antiIdeal, 2)
		if sPlus+sMinus == 0 {
			scores[i] = 0.5
			continue
		}
		scores[i] = sMinus / (sPlus + sMinus)
	}

	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]]-scores[order[b]] > scoreEpsilon
	})

	rankings := make([]RankedAlternative, rows)
	for pos, idx := range order {
		alt := dm.Alternatives[idx]
		rankings[pos] = RankedAlternative{
			AlternativeID: alt.ID,
			Name:          alt.Name,
			Score:         scores[idx],
			Rank:          pos + 1,
		}
	}

	return &TOPSISRanking{
		Rankings:  rankings,
		Ideal:     ideal,
		AntiIdeal: antiIdeal,
		Warnings:  warnings,
	}, nil
}
