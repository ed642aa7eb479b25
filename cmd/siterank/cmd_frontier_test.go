package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Calder-Energy/Siterank/mcda"
)

const frontierRequestYAML = `criteria:
  - investment_cost
  - technical_quality
alternatives:
  - id: a
    name: Cheap and good
    attributes: {investment_cost: 100, technical_quality: 0.9}
  - id: b
    name: Premium
    attributes: {investment_cost: 200, technical_quality: 0.95}
  - id: c
    name: Dominated
    attributes: {investment_cost: 150, technical_quality: 0.7}
`

func TestFrontierCommandTable(t *testing.T) {
	path := writeRequestFile(t, "request.yaml", frontierRequestYAML)

	cmd := newFrontierCommand(&rootOptions{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	result := out.String()
	assert.Contains(t, result, "Cheap and good")
	assert.Contains(t, result, "Premium")
	assert.NotContains(t, result, "Dominated")
	assert.Contains(t, result, "2 of 3 alternatives are non-dominated")
}

func TestFrontierCommandJSON(t *testing.T) {
	path := writeRequestFile(t, "request.yaml", frontierRequestYAML)

	cmd := newFrontierCommand(&rootOptions{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var front []mcda.Alternative
	require.NoError(t, json.Unmarshal(out.Bytes(), &front))
	require.Len(t, front, 2)
	assert.Equal(t, "a", front[0].ID)
	assert.Equal(t, "b", front[1].ID)
}

func TestFrontierCommandInvalidRequest(t *testing.T) {
	single := `criteria: [investment_cost]
alternatives:
  - id: only
    attributes: {investment_cost: 100}
`
	path := writeRequestFile(t, "request.yaml", single)

	cmd := newFrontierCommand(&rootOptions{})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)

	var invalidErr *InvalidRequestError
	require.True(t, errors.As(err, &invalidErr), "expected InvalidRequestError, got %T", err)
	assert.Contains(t, errOut.String(), "alternatives")
}
