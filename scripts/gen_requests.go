// gen_requests.go — standalone script to generate a synthetic site-ranking
// request file for demos and sensitivity experiments.
//
// Usage:
//
//	go run scripts/gen_requests.go -n 12 -seed 7 -o request.yaml
//	go run scripts/gen_requests.go -n 5 -format json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Calder-Energy/Siterank/mcda"
)

// valueRange bounds the synthetic values drawn for one criterion.
type valueRange struct {
	lo, hi float64
}

var ranges = map[string]valueRange{
	"investment_cost":      {1500, 3500},
	"technical_quality":    {0.5, 1.0},
	"environmental_impact": {10, 80},
	"social_impact":        {0.3, 0.9},
	"financial_return":     {4, 12},
}

func main() {
	n := flag.Int("n", 8, "number of site alternatives")
	seed := flag.Int64("seed", 1, "random seed")
	format := flag.String("format", "yaml", "output format: yaml or json")
	out := flag.String("o", "", "output file (default: stdout)")
	flag.Parse()

	if *n < 2 {
		log.Fatal("need at least 2 alternatives")
	}

	rng := rand.New(rand.NewSource(*seed))
	catalogue := mcda.ListCriteria()

	names := make([]string, len(catalogue))
	weights := make([]float64, len(catalogue))
	for i, c := range catalogue {
		names[i] = c.Name
		weights[i] = 1.0 / float64(len(catalogue))
	}

	alts := make([]mcda.Alternative, *n)
	for i := range alts {
		attrs := make(map[string]float64, len(catalogue))
		for _, c := range catalogue {
			r, ok := ranges[c.Name]
			if !ok {
				r = valueRange{0, 1}
			}
			attrs[c.Name] = r.lo + rng.Float64()*(r.hi-r.lo)
		}
		alts[i] = mcda.Alternative{
			ID:         fmt.Sprintf("site-%02d", i+1),
			Name:       fmt.Sprintf("Candidate site %d", i+1),
			Attributes: attrs,
		}
	}

	req := mcda.Request{
		Method:       mcda.MethodDirectWeights,
		Criteria:     names,
		Weights:      weights,
		Alternatives: alts,
	}

	var data []byte
	var err error
	switch *format {
	case "json":
		data, err = json.MarshalIndent(req, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(req)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %d alternatives to %s\n", *n, *out)
}
