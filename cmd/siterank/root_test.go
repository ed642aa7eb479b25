package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandAnalyze(t *testing.T) {
	path := writeRequestFile(t, "request.yaml", directRequestYAML)

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"analyze", path, "--log-format", "json"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "north")
	assert.Contains(t, errOut.String(), `"component":"analyze"`)
	assert.Contains(t, errOut.String(), "request analyzed")
}

func TestRootCommandMissingConfig(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"criteria", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestRootCommandUnknownSubcommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"rank-everything"})

	assert.Error(t, cmd.Execute())
}

func TestInvalidRequestErrorMessage(t *testing.T) {
	err := &InvalidRequestError{Path: "sites.yaml"}
	assert.Equal(t, "request sites.yaml failed validation", err.Error())
}
