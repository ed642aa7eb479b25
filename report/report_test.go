package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Calder-Energy/Siterank/mcda"
)

func analyzedEnvelope(t *testing.T) *Envelope {
	t.Helper()
	reg, err := mcda.NewRegistry(
		mcda.Criterion{Name: "cost", Direction: mcda.Cost, Unit: "kEUR"},
		mcda.Criterion{Name: "reliability", Direction: mcda.Benefit, Unit: "index"},
	)
	if err != nil {
		t.Fatal(err)
	}
	req := mcda.Request{
		Method:   mcda.MethodDirectWeights,
		Criteria: []string{"cost", "reliability"},
		Weights:  []float64{0.4, 0.6},
		Alternatives: []mcda.Alternative{
			{ID: "A", Name: "North ridge", Attributes: map[string]float64{"cost": 100, "reliability": 0.9}},
			{ID: "B", Name: "South flats", Attributes: map[string]float64{"cost": 150, "reliability": 0.95}},
			{ID: "C", Attributes: map[string]float64{"cost": 120, "reliability": 0.80}},
		},
		Registry: reg,
	}
	res, err := mcda.Analyze(req)
	if err != nil {
		t.Fatal(err)
	}
	return New(req, res, nil, 1500*time.Microsecond)
}

func TestNewEnvelope(t *testing.T) {
	env := analyzedEnvelope(t)
	if env.Version != SchemaVersion {
		t.Errorf("version = %q", env.Version)
	}
	if env.Metadata.Status != StatusOK {
		t.Errorf("status = %q", env.Metadata.Status)
	}
	if env.Metadata.ID == "" {
		t.Error("expected a run id")
	}
	if env.Metadata.Elapsed <= 0 {
		t.Errorf("elapsed = %v", env.Metadata.Elapsed)
	}
	if env.Request.Alternatives != 3 || len(env.Request.Criteria) != 2 {
		t.Errorf("request summary = %+v", env.Request)
	}
	if env.Result == nil || len(env.Errors) != 0 {
		t.Error("successful run should carry a result and no errors")
	}
}

func TestNewEnvelopeInvalid(t *testing.T) {
	req := mcda.Request{
		Method:   mcda.MethodDirectWeights,
		Criteria: []string{"investment_cost", "financial_return"},
		Weights:  []float64{0.5, 0.5},
		Alternatives: []mcda.Alternative{
			{ID: "only", Attributes: map[string]float64{"investment_cost": 1, "financial_return": 2}},
		},
	}
	res, err := mcda.Analyze(req)
	env := New(req, res, err, time.Millisecond)
	if env.Metadata.Status != StatusInvalid {
		t.Errorf("status = %q", env.Metadata.Status)
	}
	if env.Result != nil {
		t.Error("invalid run must not carry a result")
	}
	if len(env.Errors) == 0 {
		t.Fatal("expected validation errors listed")
	}
	found := false
	for _, msg := range env.Errors {
		if strings.Contains(msg, "alternatives") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v should mention the alternatives problem", env.Errors)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	env := analyzedEnvelope(t)

	s, err := ToJSON(env)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(env, back); diff != "" {
		t.Errorf("string round trip changed the envelope (-in +out):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := WriteJSON(env, path); err != nil {
		t.Fatal(err)
	}
	fromFile, err := ReadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(env, fromFile); diff != "" {
		t.Errorf("file round trip changed the envelope (-in +out):\n%s", diff)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestWriteCSV(t *testing.T) {
	env := analyzedEnvelope(t)

	var buf bytes.Buffer
	if err := WriteCSVTo(&buf, env); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(records))
	}
	header := records[0]
	if header[0] != "rank" || header[3] != "score" {
		t.Errorf("header = %v", header)
	}
	if records[1][0] != "1" || records[1][1] != "A" || records[1][2] != "North ridge" {
		t.Errorf("first row = %v", records[1])
	}
	// Rows follow rank order.
	if records[2][1] != "C" || records[3][1] != "B" {
		t.Errorf("rows out of rank order: %v %v", records[2], records[3])
	}

	path := filepath.Join(t.TempDir(), "run.csv")
	if err := WriteCSV(env, path); err != nil {
		t.Fatal(err)
	}
}

func TestWriteCSVWithoutResult(t *testing.T) {
	env := &Envelope{Version: SchemaVersion, Metadata: Metadata{ID: "x", Status: StatusInvalid}}
	var buf bytes.Buffer
	if err := WriteCSVTo(&buf, env); err == nil {
		t.Error("expected error for an envelope without a result")
	}
}
