package mcda

import (
	"fmt"
	"math"
)

// weightSumTolerance is how far a direct weight vector's sum may drift from
// one before it is rejected.
const weightSumTolerance = 1e-3

// validateRequest runs every pre-flight check and collects all problems
// instead of stopping at the first, so a caller can fix a whole request in
// one round trip. On success it returns the resolved criteria in request
// order.
func validateRequest(req *Request) ([]Criterion, ValidationErrors) {
	var errs ValidationErrors
	reg := req.registry()

	switch req.Method {
	case MethodDirectWeights, MethodAHPWeights:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method))
	}

	if len(req.Criteria) < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInsufficientCriteria, len(req.Criteria)))
	}
	criteria := make([]Criterion, 0, len(req.Criteria))
	seenCriteria := make(map[string]struct{}, len(req.Criteria))
	for _, name := range req.Criteria {
		if _, dup := seenCriteria[name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateCriterion, name))
			continue
		}
		seenCriteria[name] = struct{}{}
		c, ok := reg.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCriterion, name))
			continue
		}
		criteria = append(criteria, c)
	}

	if len(req.Alternatives) < 2 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInsufficientAlternatives, len(req.Alternatives)))
	}
	ids := make(map[string]struct{}, len(req.Alternatives))
	for i, alt := range req.Alternatives {
		if alt.ID == "" {
			errs = append(errs, fmt.Errorf("%w: alternative %d has an empty id", ErrInvalidAlternative, i))
			continue
		}
		if _, dup := ids[alt.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidAlternative, alt.ID))
			continue
		}
		ids[alt.ID] = struct{}{}
		for _, c := range criteria {
			v, ok := alt.Attributes[c.Name]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: alternative %q has no value for criterion %q",
					ErrMissingAttribute, alt.ID, c.Name))
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, fmt.Errorf("%w: alternative %q has non-finite value %v for criterion %q",
					ErrMissingAttribute, alt.ID, v, c.Name))
			}
		}
	}

	// The weight source must match the chosen method, and only that
	// method's vector may be supplied.
	switch req.Method {
	case MethodDirectWeights:
		if len(req.Judgments) > 0 {
			errs = append(errs, fmt.Errorf("%w: judgments are only accepted with method %s",
				ErrMalformedJudgments, MethodAHPWeights))
		}
		errs = append(errs, validateDirectWeights(req.Weights, len(req.Criteria))...)
	case MethodAHPWeights:
		if len(req.Weights) > 0 {
			errs = append(errs, fmt.Errorf("%w: weights are only accepted with method %s",
				ErrMalformedWeights, MethodDirectWeights))
		}
		errs = append(errs, validateJudgments(req.Judgments, len(req.Criteria))...)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return criteria, nil
}

// validateDirectWeights checks a caller-supplied weight vector: one weight
// per criterion, all finite and non-negative, summing to one within
// weightSumTolerance.
func validateDirectWeights(weights []float64, n int) ValidationErrors {
	var errs ValidationErrors
	if len(weights) != n {
		errs = append(errs, fmt.Errorf("%w: got %d weights for %d criteria",
			ErrMalformedWeights, len(weights), n))
		return errs
	}
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			errs = append(errs, fmt.Errorf("%w: weight %d is %v", ErrMalformedWeights, i, w))
			return errs
		}
		if w < 0 {
			errs = append(errs, fmt.Errorf("%w: weight %d is negative (%v)", ErrMalformedWeights, i, w))
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		errs = append(errs, fmt.Errorf("%w: weights sum to %v, want 1 within %v",
			ErrMalformedWeights, sum, weightSumTolerance))
	}
	return errs
}

// validateJudgments checks a pairwise judgment vector: exactly PairCount(n)
// entries, every one a positive finite ratio. Magnitudes outside the
// conventional 1/9..9 band are allowed; the consistency ratio flags extreme
// judgment sets.
func validateJudgments(judgments []float64, n int) ValidationErrors {
	var errs ValidationErrors
	if n < 2 {
		return errs
	}
	if want := PairCount(n); len(judgments) != want {
		errs = append(errs, fmt.Errorf("%w: got %d judgments, want %d for %d criteria",
			ErrMalformedJudgments, len(judgments), want, n))
		return errs
	}
	for i, v := range judgments {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("%w: judgment %d is %v, must be a positive finite ratio",
				ErrMalformedJudgments, i, v))
		}
	}
	return errs
}
