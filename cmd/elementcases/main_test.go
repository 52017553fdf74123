package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/elementcases/cases"
	"github.com/notargets/elementcases/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListJSONForCell(t *testing.T) {
	out, err := execute(t, "list", "-n", "3", "--cell", "pyramid", "--format", "json")
	require.NoError(t, err)

	var got []cases.CellCase
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want, err := cases.EnumerateCell(3, element.Pyramid)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, out, `"family": "P"`)
	assert.Contains(t, out, `"equispaced"`)
}

func TestListYAML(t *testing.T) {
	out, err := execute(t, "list", "-n", "2", "-f", "yaml")
	require.NoError(t, err)

	var got []cases.TestCase
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	want, err := cases.Enumerate(2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListTable(t *testing.T) {
	out, err := execute(t, "list", "-n", "1", "--cell", "interval")
	require.NoError(t, err)
	assert.Contains(t, out, "FAMILY")
	assert.NotContains(t, out, "CELL")
	assert.Contains(t, out, "integral_chebyshev")
	assert.Contains(t, out, "serendipity")

	out, err = execute(t, "list", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "CELL")
	assert.Contains(t, out, "tetrahedron")
}

func TestListErrors(t *testing.T) {
	_, err := execute(t, "list", "--cell", "point")
	assert.ErrorIs(t, err, cases.ErrEmptyCaseSet)

	_, err = execute(t, "list", "--cell", "cube")
	assert.ErrorIs(t, err, element.ErrUnknownName)

	_, err = execute(t, "list", "-n", "0")
	require.Error(t, err)

	_, err = execute(t, "list", "--format", "xml")
	require.Error(t, err)
}

func TestListFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_degree: 1\ncell: prism\nformat: json\n"), 0o644))

	out, err := execute(t, "list", "--config", path)
	require.NoError(t, err)
	var got []cases.CellCase
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 3)

	// Flags override the file
	out, err = execute(t, "list", "--config", path, "--cell", "all", "-n", "2")
	require.NoError(t, err)
	var all []cases.TestCase
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 101)
}

func TestCoverage(t *testing.T) {
	out, err := execute(t, "coverage", "-n", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "bubble")
	for _, c := range element.AllCells() {
		assert.Contains(t, out, c.String())
	}

	out, err = execute(t, "coverage", "-n", "4", "--raw")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(element.AllCells()))
}
