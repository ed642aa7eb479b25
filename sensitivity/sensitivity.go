// Package sensitivity measures how robust a site ranking is to weight
// perturbation. Each criterion's weight is scaled up and down by a fixed
// fraction, the analysis is re-run, and the resulting rankings are compared
// against the baseline.
package sensitivity

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/Calder-Energy/Siterank/mcda"
)

// DefaultDelta is the perturbation fraction applied when none is configured.
const DefaultDelta = 0.1

// CriterionImpact describes how the ranking reacts when one criterion's
// weight is scaled by (1±delta) and the vector renormalized.
type CriterionImpact struct {
	Criterion string `json:"criterion"`
	// TauUp and TauDown are Kendall rank correlations between the baseline
	// closeness scores and the perturbed ones; 1 means the order is intact.
	TauUp   float64 `json:"tau_up"`
	TauDown float64 `json:"tau_down"`
	// TopChanged reports whether either perturbation dethroned the baseline
	// winner.
	TopChanged bool `json:"top_changed"`
	// WinnerShift is the largest absolute change in the baseline winner's
	// closeness score across both perturbations.
	WinnerShift float64 `json:"winner_shift"`
	// Impact is 1 minus the worse of the two correlations: 0 for a fully
	// stable criterion, up to 2 for a complete reversal.
	Impact float64 `json:"impact"`
}

// RankedCriterion pairs a criterion with its impact for the sorted view.
type RankedCriterion struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// Result holds one complete sensitivity sweep.
type Result struct {
	Baseline *mcda.Result               `json:"baseline"`
	Delta    float64                    `json:"delta"`
	Impacts  map[string]CriterionImpact `json:"impacts"`
	// Ranking lists criteria by impact, most disruptive first. Ties are
	// broken by name so the output is reproducible.
	Ranking []RankedCriterion `json:"ranking"`
}

// Analyzer perturbs the weights of one analysis request.
type Analyzer struct {
	req   mcda.Request
	delta float64
}

// NewAnalyzer creates an analyzer for the given request with DefaultDelta.
func NewAnalyzer(req mcda.Request) *Analyzer {
	return &Analyzer{req: req, delta: DefaultDelta}
}

// WithDelta sets the perturbation fraction. It must lie in (0,1).
func (a *Analyzer) WithDelta(delta float64) *Analyzer {
	a.delta = delta
	return a
}

// prepare runs the baseline analysis and rewrites the request as a direct
// weight submission, so every scenario perturbs the same resolved vector.
// AHP judgments are derived exactly once, here.
func (a *Analyzer) prepare() (*mcda.Result, mcda.Request, error) {
	if a.delta <= 0 || a.delta >= 1 {
		return nil, mcda.Request{}, fmt.Errorf("delta must be in (0,1), got %v", a.delta)
	}
	baseline, err := mcda.Analyze(a.req)
	if err != nil {
		return nil, mcda.Request{}, err
	}
	base := a.req
	base.Method = mcda.MethodDirectWeights
	base.Judgments = nil
	base.Weights = baseline.Weights
	return baseline, base, nil
}

// Analyze sweeps every criterion sequentially.
func (a *Analyzer) Analyze() (*Result, error) {
	baseline, base, err := a.prepare()
	if err != nil {
		return nil, err
	}
	impacts := make(map[string]CriterionImpact, len(baseline.Criteria))
	for k, c := range baseline.Criteria {
		impact, err := a.perturb(baseline, base, k)
		if err != nil {
			return nil, err
		}
		impacts[c.Name] = impact
	}
	return a.assemble(baseline, impacts), nil
}

// AnalyzeParallel sweeps every criterion concurrently, one goroutine per
// criterion. Results are identical to Analyze; the scenarios are
// independent.
func (a *Analyzer) AnalyzeParallel() (*Result, error) {
	baseline, base, err := a.prepare()
	if err != nil {
		return nil, err
	}

	impacts := make(map[string]CriterionImpact, len(baseline.Criteria))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	for k, c := range baseline.Criteria {
		wg.Add(1)
		go func(k int, name string) {
			defer wg.Done()
			impact, err := a.perturb(baseline, base, k)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			impacts[name] = impact
		}(k, c.Name)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return a.assemble(baseline, impacts), nil
}

// perturb runs both scenarios for criterion k and summarizes them against
// the baseline.
func (a *Analyzer) perturb(baseline *mcda.Result, base mcda.Request, k int) (CriterionImpact, error) {
	up, err := runScenario(base, k, 1+a.delta)
	if err != nil {
		return CriterionImpact{}, err
	}
	down, err := runScenario(base, k, 1-a.delta)
	if err != nil {
		return CriterionImpact{}, err
	}

	baseScores := scoreVector(base.Alternatives, baseline)
	upScores := scoreVector(base.Alternatives, up)
	downScores := scoreVector(base.Alternatives, down)

	tauUp := stat.Kendall(baseScores, upScores, nil)
	tauDown := stat.Kendall(baseScores, downScores, nil)

	winner := baseline.Rankings[0]
	shiftUp := math.Abs(scoreOf(up, winner.AlternativeID) - winner.Score)
	shiftDown := math.Abs(scoreOf(down, winner.AlternativeID) - winner.Score)

	return CriterionImpact{
		Criterion:   baseline.Criteria[k].Name,
		TauUp:       tauUp,
		TauDown:     tauDown,
		TopChanged:  up.Rankings[0].AlternativeID != winner.AlternativeID || down.Rankings[0].AlternativeID != winner.AlternativeID,
		WinnerShift: math.Max(shiftUp, shiftDown),
		Impact:      1 - math.Min(tauUp, tauDown),
	}, nil
}

// runScenario re-runs the analysis with criterion k's weight scaled by
// factor and the vector renormalized. The incoming request is copied by
// value and gets its own weight slice, so scenarios never share state.
func runScenario(base mcda.Request, k int, factor float64) (*mcda.Result, error) {
	weights := make([]float64, len(base.Weights))
	copy(weights, base.Weights)
	weights[k] *= factor

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	base.Weights = weights
	return mcda.Analyze(base)
}

func (a *Analyzer) assemble(baseline *mcda.Result, impacts map[string]CriterionImpact) *Result {
	ranking := make([]RankedCriterion, 0, len(impacts))
	for name, impact := range impacts {
		ranking = append(ranking, RankedCriterion{Name: name, Impact: impact.Impact})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Impact != ranking[j].Impact {
			return ranking[i].Impact > ranking[j].Impact
		}
		return ranking[i].Name < ranking[j].Name
	})
	return &Result{
		Baseline: baseline,
		Delta:    a.delta,
		Impacts:  impacts,
		Ranking:  ranking,
	}
}

// scoreVector orders closeness scores by the request's alternative order so
// baseline and scenario vectors align positionally.
func scoreVector(alts []mcda.Alternative, res *mcda.Result) []float64 {
	byID := make(map[string]float64, len(res.Rankings))
	for _, r := range res.Rankings {
		byID[r.AlternativeID] = r.Score
	}
	out := make([]float64, len(alts))
	for i, alt := range alts {
		out[i] = byID[alt.ID]
	}
	return out
}

func scoreOf(res *mcda.Result, id string) float64 {
	for _, r := range res.Rankings {
		if r.AlternativeID == id {
			return r.Score
		}
	}
	return math.NaN()
}
