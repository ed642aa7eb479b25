// Package mcda ranks site alternatives under multiple weighted criteria
// using TOPSIS, with weights supplied directly or derived from pairwise
// judgments via AHP.
package mcda

import "fmt"

// Method selects how criterion weights are obtained.
type Method string

const (
	// MethodDirectWeights takes an already-normalized weight vector from
	// the caller, aligned positionally with the chosen criteria.
	MethodDirectWeights Method = "DIRECT_WEIGHTS"
	// MethodAHPWeights derives the weight vector from pairwise judgments
	// submitted in ComparisonPairs order.
	MethodAHPWeights Method = "AHP_WEIGHTS"
)

// Request is one complete analysis submission.
type Request struct {
	Method       Method        `json:"method" yaml:"method"`
	Criteria     []string      `json:"criteria" yaml:"criteria"`
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives"`

	// Weights is the direct weight vector (MethodDirectWeights only).
	Weights []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	// Judgments is the pairwise judgment vector (MethodAHPWeights only).
	Judgments []float64 `json:"judgments,omitempty" yaml:"judgments,omitempty"`

	// Registry overrides the built-in criteria catalogue. Nil means
	// DefaultRegistry().
	Registry *Registry `json:"-" yaml:"-"`
}

func (r *Request) registry() *Registry {
	if r.Registry != nil {
		return r.Registry
	}
	return DefaultRegistry()
}

// Result is a completed, ranked analysis.
type Result struct {
	Method    Method              `json:"method"`
	Criteria  []Criterion         `json:"criteria"`
	Weights   []float64           `json:"weights"`
	Rankings  []RankedAlternative `json:"rankings"`
	Ideal     []float64           `json:"ideal_solution"`
	AntiIdeal []float64           `json:"anti_ideal_solution"`

	// Consistency carries the AHP diagnostics; nil for direct weights.
	Consistency *WeightDerivation `json:"consistency,omitempty"`
	Warnings    []Warning         `json:"warnings,omitempty"`
}

// Analyze runs the whole pipeline over one request: validation, weight
// resolution, decision matrix construction, normalization, TOPSIS ranking.
// Fatal problems are returned as ValidationErrors with nothing computed;
// non-fatal findings (inconsistent judgments, degenerate criteria) are
// attached to the result as warnings. The computation is deterministic:
// identical requests produce identical results.
func Analyze(req Request) (*Result, error) {
	criteria, verrs := validateRequest(&req)
	if len(verrs) > 0 {
		return nil, verrs
	}

	var (
		weights     []float64
		consistency *WeightDerivation
		warnings    []Warning
	)
	switch req.Method {
	case MethodDirectWeights:
		weights = append([]float64(nil), req.Weights...)
	case MethodAHPWeights:
		names := make([]string, len(criteria))
		for i, c := range criteria {
			names[i] = c.Name
		}
		wd, err := DeriveWeights(names, req.Judgments)
		if err != nil {
			return nil, err
		}
		weights = wd.Weights
		consistency = wd
		if !wd.Consistent {
			warnings = append(warnings, Warning{
				Code:  WarnConsistencyRatio,
				Value: wd.CR,
				Message: fmt.Sprintf("consistency ratio %.4f exceeds %.2f; review the pairwise judgments",
					wd.CR, ConsistencyThreshold),
			})
		}
	}

	dm, err := BuildDecisionMatrix(req.Alternatives, criteria)
	if err != nil {
		return nil, err
	}
	ranking, err := RankTOPSIS(dm, weights)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, ranking.Warnings...)

	return &Result{
		Method:      req.Method,
		Criteria:    criteria,
		Weights:     weights,
		Rankings:    ranking.Rankings,
		Ideal:       ranking.Ideal,
		AntiIdeal:   ranking.AntiIdeal,
		Consistency: consistency,
		Warnings:    warnings,
	}, nil
}
