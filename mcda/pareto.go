package mcda

import (
	"errors"
	"fmt"
)

// Frontier returns the Pareto-optimal alternatives under the named criteria.
// An alternative is dominated if another one is at least as good on every
// criterion (honoring direction, so lower cost values count as better) and
// strictly better on at least one. Input order is preserved.
// O(n^2) dominance check — fine for typical candidate set sizes.
//
// Dominated sites can be dropped before judgment elicitation: no weight
// vector can rank them first.
func Frontier(alternatives []Alternative, criteriaNames []string, reg *Registry) ([]Alternative, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if len(criteriaNames) == 0 {
		return nil, errors.New("at least one criterion is required")
	}
	criteria, err := reg.resolveCriteria(criteriaNames)
	if err != nil {
		return nil, err
	}
	if len(alternatives) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientAlternatives, len(alternatives))
	}
	dm, err := BuildDecisionMatrix(alternatives, criteria)
	if err != nil {
		return nil, err
	}

	var frontier []Alternative
	for i := range alternatives {
		dominated := false
		for j := range alternatives {
			if i == j {
				continue
			}
			if dominates(dm, j, i) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, alternatives[i])
		}
	}
	return frontier, nil
}

// dominates returns true if row a dominates row b: at least as good
// everywhere, strictly better somewhere.
func dominates(dm *DecisionMatrix, a, b int) bool {
	strict := false
	for j, c := range dm.Criteria {
		va, vb := dm.Values.At(a, j), dm.Values.At(b, j)
		if c.Direction == Cost {
			va, vb = -va, -vb
		}
		if va < vb {
			return false
		}
		if va > vb {
			strict = true
		}
	}
	return strict
}
