package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nodelift/internal/pipeline"
)

const sampleDocument = `version: "1.0"
name: "Checkout screen"
theme:
  color_scheme:
    primary: "#6750A4"
    surface: "#FFFBFE"
root:
  type: column
  layout:
    kind: column
    spacing: 8
  styling:
    colors:
      - target: background
        value: "#FFFBFE"
        theme_ref: true
        theme_path: "colorScheme.surface"
  children:
    - type: text
      props:
        text: "Your cart"
        fontSize: 24
    - type: button
      definition: checkoutButton
      props:
        text: "Pay now"
definitions:
  - name: checkoutButton
    usage_count: 1
    base:
      type: button
      props:
        text: "Pay now"
        style: primary
    variants:
      - name: Secondary
        props:
          style: secondary
`

func writeDocument(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "screen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runRootCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommandWritesNodeGraph(t *testing.T) {
	docPath := writeDocument(t, sampleDocument)
	outPath := filepath.Join(t.TempDir(), "graph.json")

	_, stderr, err := runRootCmd(t, "convert", "--config", docPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted \"Checkout screen\"")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(data, &result))
	require.NotNil(t, result.Root)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "FRAME", string(result.Root.Type))
	require.Len(t, result.Components, 1)
	assert.NotEmpty(t, result.Bindings)
}

func TestConvertCommandWritesToStdout(t *testing.T) {
	docPath := writeDocument(t, sampleDocument)

	stdout, _, err := runRootCmd(t, "convert", "--config", docPath)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.NotNil(t, result.Root)
}

func TestConvertCommandNoVariablesFlag(t *testing.T) {
	docPath := writeDocument(t, sampleDocument)

	stdout, _, err := runRootCmd(t, "convert", "--config", docPath, "--no-variables")
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Empty(t, result.Bindings)
}

func TestConvertCommandJSONStats(t *testing.T) {
	docPath := writeDocument(t, sampleDocument)
	outPath := filepath.Join(t.TempDir(), "graph.json")

	_, stderr, err := runRootCmd(t, "convert", "--config", docPath, "--out", outPath, "--json-stats")
	require.NoError(t, err)

	var stats pipeline.Stats
	require.NoError(t, json.Unmarshal([]byte(stderr), &stats))
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 1, stats.Components)
}

func TestConvertCommandMissingConfig(t *testing.T) {
	_, _, err := runRootCmd(t, "convert", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestConvertCommandRejectsDirectory(t *testing.T) {
	_, _, err := runRootCmd(t, "convert", "--config", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
