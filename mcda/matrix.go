package mcda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Alternative is one candidate site under evaluation: a stable identifier,
// an optional display name, and one measured value per criterion.
type Alternative struct {
	ID         string             `json:"id" yaml:"id"`
	Name       string             `json:"name,omitempty" yaml:"name,omitempty"`
	Attributes map[string]float64 `json:"attributes" yaml:"attributes"`
}

// DecisionMatrix pairs the raw performance matrix with the ordered lists
// that give its axes identity: row i belongs to Alternatives[i], column j to
// Criteria[j].
type DecisionMatrix struct {
	Alternatives []Alternative
	Criteria     []Criterion
	Values       *mat.Dense
}

// BuildDecisionMatrix assembles the m×n raw matrix from alternative
// attributes. Every alternative must carry a finite value for every chosen
// criterion; absent or non-finite values are errors, never defaulted.
func BuildDecisionMatrix(alternatives []Alternative, criteria []Criterion) (*DecisionMatrix, error) {
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInsufficientAlternatives)
	}
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInsufficientCriteria)
	}

	seen := make(map[string]struct{}, len(alternatives))
	values := mat.NewDense(len(alternatives), len(criteria), nil)
	for i, alt := range alternatives {
		if alt.ID == "" {
			return nil, fmt.Errorf("%w: alternative %d has an empty id", ErrInvalidAlternative, i)
		}
		if _, dup := seen[alt.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidAlternative, alt.ID)
		}
		seen[alt.ID] = struct{}{}

		for j, c := range criteria {
			v, ok := alt.Attributes[c.Name]
			if !ok {
				return nil, fmt.Errorf("%w: alternative %q has no value for criterion %q",
					ErrMissingAttribute, alt.ID, c.Name)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: alternative %q has non-finite value %v for criterion %q",
					ErrMissingAttribute, alt.ID, v, c.Name)
			}
			values.Set(i, j, v)
		}
	}

	return &DecisionMatrix{
		Alternatives: alternatives,
		Criteria:     criteria,
		Values:       values,
	}, nil
}

// Normalize returns the column-wise vector normalization of the raw matrix:
// each entry divided by the Euclidean norm of its column. A constant column
// cannot discriminate between alternatives; it is left all-zero in the
// result and reported as a degenerate-criterion warning. The input matrix is
// not modified.
func Normalize(dm *DecisionMatrix) (*mat.Dense, []Warning) {
	rows, cols := dm.Values.Dims()
	normalized := mat.NewDense(rows, cols, nil)

	var warnings []Warning
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, dm.Values)
		if floats.Min(col) == floats.Max(col) {
			warnings = append(warnings, Warning{
				Code:      WarnDegenerateCriterion,
				Criterion: dm.Criteria[j].Name,
				Value:     col[0],
				Message: fmt.Sprintf("criterion %q holds the same value (%v) for every alternative and cannot affect the ranking",
					dm.Criteria[j].Name, col[0]),
			})
			continue
		}
		norm := floats.Norm(col, 2)
		for i := 0; i < rows; i++ {
			normalized.Set(i, j, col[i]/norm)
		}
	}
	return normalized, warnings
}
