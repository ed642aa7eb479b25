package mcda

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel conditions for fatal validation failures. Every problem collected
// during pre-flight validation wraps one of these, so callers can match with
// errors.Is regardless of the detail text.
var (
	ErrInsufficientCriteria     = errors.New("at least two criteria are required")
	ErrInsufficientAlternatives = errors.New("at least two alternatives are required")
	ErrUnknownMethod            = errors.New("unknown analysis method")
	ErrUnknownCriterion         = errors.New("criterion not in catalogue")
	ErrDuplicateCriterion       = errors.New("duplicate criterion")
	ErrInvalidAlternative       = errors.New("invalid alternative")
	ErrMissingAttribute         = errors.New("missing attribute")
	ErrMalformedJudgments       = errors.New("malformed judgment vector")
	ErrMalformedWeights         = errors.New("malformed weight vector")
)

// ValidationErrors collects every fatal problem found while checking an
// analysis request. Validation never stops at the first failure; the caller
// gets the full list in one response and no partial result.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(v), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected problems to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error { return v }

// WarningCode identifies a non-fatal condition attached to a result.
type WarningCode string

const (
	// WarnConsistencyRatio flags AHP judgments whose consistency ratio
	// exceeds ConsistencyThreshold. The derived weights are still usable
	// but should be reviewed by the analyst.
	WarnConsistencyRatio WarningCode = "consistency_ratio"
	// WarnDegenerateCriterion flags a criterion on which every alternative
	// ties. The criterion contributes nothing to the ranking.
	WarnDegenerateCriterion WarningCode = "degenerate_criterion"
)

// Warning is a non-fatal diagnostic. Warnings never suppress the ranking;
// they ride along with the result so callers can surface them as advisory
// annotations.
type Warning struct {
	Code      WarningCode `json:"code"`
	Criterion string      `json:"criterion,omitempty"`
	Value     float64     `json:"value,omitempty"`
	Message   string      `json:"message"`
}
