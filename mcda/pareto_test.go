package mcda

import (
	"errors"
	"testing"
)

func paretoRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		Criterion{Name: "capex", Direction: Cost, Unit: "kEUR"},
		Criterion{Name: "output", Direction: Benefit, Unit: "GWh/yr"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func frontierIDs(alts []Alternative) []string {
	ids := make([]string, len(alts))
	for i, a := range alts {
		ids[i] = a.ID
	}
	return ids
}

func TestFrontier(t *testing.T) {
	alts := []Alternative{
		{ID: "a", Attributes: map[string]float64{"capex": 100, "output": 50}},
		{ID: "b", Attributes: map[string]float64{"capex": 120, "output": 70}},
		// Dominated by a: more expensive and lower output.
		{ID: "c", Attributes: map[string]float64{"capex": 130, "output": 45}},
	}
	frontier, err := Frontier(alts, []string{"capex", "output"}, paretoRegistry(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(frontier) != 2 {
		t.Fatalf("expected 2 frontier members, got %v", frontierIDs(frontier))
	}
	if frontier[0].ID != "a" || frontier[1].ID != "b" {
		t.Errorf("frontier = %v, want [a b]", frontierIDs(frontier))
	}
}

func TestFrontierHonorsDirection(t *testing.T) {
	alts := []Alternative{
		{ID: "cheap", Attributes: map[string]float64{"capex": 90, "output": 10}},
		{ID: "pricey", Attributes: map[string]float64{"capex": 200, "output": 10}},
	}
	frontier, err := Frontier(alts, []string{"capex"}, paretoRegistry(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(frontier) != 1 || frontier[0].ID != "cheap" {
		t.Errorf("frontier = %v, want [cheap]", frontierIDs(frontier))
	}
}

func TestFrontierKeepsExactTies(t *testing.T) {
	alts := []Alternative{
		{ID: "x", Attributes: map[string]float64{"capex": 100}},
		{ID: "y", Attributes: map[string]float64{"capex": 100}},
	}
	frontier, err := Frontier(alts, []string{"capex"}, paretoRegistry(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(frontier) != 2 {
		t.Errorf("equal alternatives dominate nothing; frontier = %v", frontierIDs(frontier))
	}
}

func TestFrontierDefaultRegistry(t *testing.T) {
	alts := []Alternative{
		{ID: "site-1", Attributes: map[string]float64{"investment_cost": 900, "financial_return": 8}},
		{ID: "site-2", Attributes: map[string]float64{"investment_cost": 1100, "financial_return": 6}},
	}
	frontier, err := Frontier(alts, []string{"investment_cost", "financial_return"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(frontier) != 1 || frontier[0].ID != "site-1" {
		t.Errorf("frontier = %v, want [site-1]", frontierIDs(frontier))
	}
}

func TestFrontierErrors(t *testing.T) {
	alts := []Alternative{
		{ID: "a", Attributes: map[string]float64{"capex": 100}},
		{ID: "b", Attributes: map[string]float64{"capex": 120}},
	}
	if _, err := Frontier(alts, nil, paretoRegistry(t)); err == nil {
		t.Error("expected error for empty criteria")
	}
	if _, err := Frontier(alts, []string{"made_up"}, paretoRegistry(t)); !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("got %v", err)
	}
	if _, err := Frontier(alts, []string{"capex", "capex"}, paretoRegistry(t)); !errors.Is(err, ErrDuplicateCriterion) {
		t.Errorf("got %v", err)
	}
	if _, err := Frontier(alts[:1], []string{"capex"}, paretoRegistry(t)); !errors.Is(err, ErrInsufficientAlternatives) {
		t.Errorf("got %v", err)
	}
	missing := []Alternative{
		{ID: "m", Attributes: map[string]float64{}},
		{ID: "n", Attributes: map[string]float64{"capex": 1}},
	}
	if _, err := Frontier(missing, []string{"capex"}, paretoRegistry(t)); !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("got %v", err)
	}
}
