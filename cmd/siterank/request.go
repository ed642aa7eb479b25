package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Calder-Energy/Siterank/mcda"
)

// requestFile mirrors mcda.Request plus an optional inline catalogue
// extension merged over the configured registry.
type requestFile struct {
	Method       mcda.Method        `json:"method" yaml:"method"`
	Criteria     []string           `json:"criteria" yaml:"criteria"`
	Alternatives []mcda.Alternative `json:"alternatives" yaml:"alternatives"`
	Weights      []float64          `json:"weights,omitempty" yaml:"weights,omitempty"`
	Judgments    []float64          `json:"judgments,omitempty" yaml:"judgments,omitempty"`
	Catalogue    []mcda.Criterion   `json:"criteria_catalogue,omitempty" yaml:"criteria_catalogue,omitempty"`
}

// loadRequest reads an analysis request from a YAML or JSON file. Format is
// detected by extension (.json parses as JSON, everything else as YAML). The
// request resolves criteria against reg, extended by any criteria_catalogue
// entries the file carries.
func loadRequest(path string, reg *mcda.Registry) (mcda.Request, error) {
	var req mcda.Request

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}

	var rf requestFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &rf); err != nil {
			return req, fmt.Errorf("parse request json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return req, fmt.Errorf("parse request yaml: %w", err)
		}
	}

	req = mcda.Request{
		Method:       rf.Method,
		Criteria:     rf.Criteria,
		Alternatives: rf.Alternatives,
		Weights:      rf.Weights,
		Judgments:    rf.Judgments,
		Registry:     reg,
	}

	if len(rf.Catalogue) > 0 {
		base := reg
		if base == nil {
			base = mcda.DefaultRegistry()
		}
		ext, err := base.Extend(rf.Catalogue...)
		if err != nil {
			return req, fmt.Errorf("extend catalogue: %w", err)
		}
		req.Registry = ext
	}
	return req, nil
}
