package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/docconv/internal/cli"
)

func runMain(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := program(&flags{}).Run(args, &stdout, &stderr)
	return code, stderr.String()
}

func TestJSON2YAML_Convert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`{"b":1,"a":2}`), 0644))

	code, stderr := runMain(t, "-i", input, "-o", output)
	require.Equal(t, cli.ExitOK, code, stderr)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "b: 1\na: 2\n", string(got))
}

func TestJSON2YAML_SortKeysAndIndent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`{"z":{"y":1},"a":true}`), 0644))

	code, stderr := runMain(t, "-i", input, "-o", output, "--sort-keys", "--indent", "4")
	require.Equal(t, cli.ExitOK, code, stderr)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "a: true\nz:\n    y: 1\n", string(got))
}

func TestJSON2YAML_InvalidIndent(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.yaml")

	code, stderr := runMain(t, "-i", filepath.Join(dir, "in.json"), "-o", output, "--indent", "0")

	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "--indent")
	assert.NoFileExists(t, output)
}

func TestJSON2YAML_OnlyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(input, []byte(`{}`), 0644))

	code, stderr := runMain(t, "--input", input)

	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "--output")
}
