package mcda

import "fmt"

// Direction states whether higher or lower raw values are preferred.
type Direction string

const (
	// Benefit criteria prefer higher raw values.
	Benefit Direction = "benefit"
	// Cost criteria prefer lower raw values.
	Cost Direction = "cost"
)

// Criterion describes one selectable decision criterion. The unit is
// informational only; it never influences computation.
type Criterion struct {
	Name      string    `json:"name" yaml:"name"`
	Direction Direction `json:"direction" yaml:"direction"`
	Unit      string    `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Registry is an immutable ordered catalogue of selectable criteria. A
// registry resolves the criterion names chosen for an analysis to their
// optimization direction.
type Registry struct {
	criteria []Criterion
	index    map[string]int
}

// NewRegistry builds a catalogue from the given criteria. Names must be
// non-empty and unique; directions must be Benefit or Cost.
func NewRegistry(criteria ...Criterion) (*Registry, error) {
	r := &Registry{
		criteria: make([]Criterion, 0, len(criteria)),
		index:    make(map[string]int, len(criteria)),
	}
	for _, c := range criteria {
		if c.Name == "" {
			return nil, fmt.Errorf("criterion with empty name")
		}
		if c.Direction != Benefit && c.Direction != Cost {
			return nil, fmt.Errorf("criterion %q: direction must be %q or %q, got %q", c.Name, Benefit, Cost, c.Direction)
		}
		if _, exists := r.index[c.Name]; exists {
			return nil, fmt.Errorf("criterion %q registered twice", c.Name)
		}
		r.index[c.Name] = len(r.criteria)
		r.criteria = append(r.criteria, c)
	}
	return r, nil
}

// Extend returns a new registry with the additional criteria appended. The
// receiver is not modified. An entry whose name already exists replaces the
// original in place, so deployments can flip a direction or unit without
// re-declaring the whole catalogue.
func (r *Registry) Extend(criteria ...Criterion) (*Registry, error) {
	merged := r.List()
	for _, c := range criteria {
		if i, exists := r.index[c.Name]; exists {
			merged[i] = c
			continue
		}
		merged = append(merged, c)
	}
	return NewRegistry(merged...)
}

// List returns the catalogue in registration order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) List() []Criterion {
	out := make([]Criterion, len(r.criteria))
	copy(out, r.criteria)
	return out
}

// Lookup resolves a criterion by name.
func (r *Registry) Lookup(name string) (Criterion, bool) {
	i, ok := r.index[name]
	if !ok {
		return Criterion{}, false
	}
	return r.criteria[i], true
}

// Len returns the number of registered criteria.
func (r *Registry) Len() int { return len(r.criteria) }

// resolveCriteria maps chosen names to catalogue entries, in the given
// order, failing on the first unknown or duplicated name.
func (r *Registry) resolveCriteria(names []string) ([]Criterion, error) {
	criteria := make([]Criterion, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCriterion, name)
		}
		seen[name] = struct{}{}
		c, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
		}
		criteria = append(criteria, c)
	}
	return criteria, nil
}

var defaultRegistry = mustRegistry(
	Criterion{Name: "investment_cost", Direction: Cost, Unit: "kEUR"},
	Criterion{Name: "technical_quality", Direction: Benefit, Unit: "index"},
	Criterion{Name: "environmental_impact", Direction: Benefit, Unit: "tCO2e/yr avoided"},
	Criterion{Name: "social_impact", Direction: Benefit, Unit: "index"},
	Criterion{Name: "financial_return", Direction: Benefit, Unit: "% IRR"},
)

// DefaultRegistry returns the standard site-selection catalogue: investment
// cost, technical quality, environmental impact, social impact and financial
// return.
func DefaultRegistry() *Registry { return defaultRegistry }

// ListCriteria returns the default catalogue in order. It is the zero-input
// registry lookup used by callers that never customize the catalogue.
func ListCriteria() []Criterion { return defaultRegistry.List() }

func mustRegistry(criteria ...Criterion) *Registry {
	r, err := NewRegistry(criteria...)
	if err != nil {
		panic(err)
	}
	return r
}
