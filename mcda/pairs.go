package mcda

import "fmt"

// Pair identifies one pairwise comparison an analyst must judge: how many
// times more important is Left than Right. I and J are the positions of the
// two criteria in the chosen ordering, so a judgment vector submitted in
// enumeration order aligns positionally with the generated pairs.
type Pair struct {
	I     int    `json:"i"`
	J     int    `json:"j"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// PairCount returns the number of pairwise judgments a set of n criteria
// requires: n·(n−1)/2.
func PairCount(n int) int { return n * (n - 1) / 2 }

// ComparisonPairs enumerates every distinct unordered pair of the chosen
// criteria, in a stable order: (0,1), (0,2), …, (n−2,n−1). The enumeration
// is deterministic so analyst-submitted judgment vectors align with it.
// Fails with ErrInsufficientCriteria for fewer than two criteria and with
// ErrDuplicateCriterion when a name repeats, since a duplicate would make
// positional alignment ambiguous.
func ComparisonPairs(criteria []string) ([]Pair, error) {
	if len(criteria) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientCriteria, len(criteria))
	}
	seen := make(map[string]bool, len(criteria))
	for _, name := range criteria {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCriterion, name)
		}
		seen[name] = true
	}

	pairs := make([]Pair, 0, PairCount(len(criteria)))
	for i := 0; i < len(criteria); i++ {
		for j := i + 1; j < len(criteria); j++ {
			pairs = append(pairs, Pair{I: i, J: j, Left: criteria[i], Right: criteria[j]})
		}
	}
	return pairs, nil
}
