// Package report defines the structured output envelope for analysis runs
// and its file formats.
package report

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Calder-Energy/Siterank/mcda"
)

const SchemaVersion = "1.0.0"

// Envelope statuses.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

// Envelope wraps one analysis run for serialization: what was asked, what
// came out, and the run metadata. Invalid requests produce an envelope with
// no result and the collected validation errors, so a rejected run is still
// a well-formed report.
type Envelope struct {
	Version  string       `json:"version"`
	Metadata Metadata     `json:"metadata"`
	Request  RequestInfo  `json:"request"`
	Result   *mcda.Result `json:"result,omitempty"`
	Errors   []string     `json:"validation_errors,omitempty"`
}

// Metadata identifies one run.
type Metadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"` // ok, invalid
	Elapsed   float64   `json:"elapsed"` // seconds
}

// RequestInfo summarizes the submission without repeating the full payload.
type RequestInfo struct {
	Method       mcda.Method `json:"method"`
	Criteria     []string    `json:"criteria"`
	Alternatives int         `json:"alternatives"`
}

// New assembles the envelope for one run. A nil runErr yields StatusOK with
// the result attached; otherwise the result is dropped and the validation
// problems are listed individually.
func New(req mcda.Request, res *mcda.Result, runErr error, elapsed time.Duration) *Envelope {
	env := &Envelope{
		Version: SchemaVersion,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Status:    StatusOK,
			Elapsed:   elapsed.Seconds(),
		},
		Request: RequestInfo{
			Method:       req.Method,
			Criteria:     req.Criteria,
			Alternatives: len(req.Alternatives),
		},
		Result: res,
	}
	if runErr == nil {
		return env
	}

	env.Metadata.Status = StatusInvalid
	env.Result = nil
	var verrs mcda.ValidationErrors
	if errors.As(runErr, &verrs) {
		for _, e := range verrs {
			env.Errors = append(env.Errors, e.Error())
		}
	} else {
		env.Errors = []string{runErr.Error()}
	}
	return env
}
