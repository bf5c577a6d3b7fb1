package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapcolor/core"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, _, err := run(t, "solve", "--map", "testdata/south_america.yaml", "--colors", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: solved with 4 colors, 7 regions, 14 steps (14 trials, 0 undos)")
	assert.Contains(t, out, "Chile      1  Pink")
	assert.Contains(t, out, "Brazil     4  Blue")
}

func TestSolve_NoSolutionIsNotAnError(t *testing.T) {
	out, _, err := run(t, "solve", "--map", "testdata/south_america.yaml", "--colors", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: no solution with 3 colors")
}

func TestSolve_JSONWithTrace(t *testing.T) {
	out, _, err := run(t, "solve", "-m", "testdata/triangle.json", "-k", "3", "--format", "json", "--trace")
	require.NoError(t, err)

	var got struct {
		Solved bool              `json:"solved"`
		Order  []string          `json:"order"`
		Trace  []json.RawMessage `json:"trace"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Solved)
	assert.Equal(t, []string{"A", "B", "C"}, got.Order)
	assert.Len(t, got.Trace, 6)
}

func TestSolve_Markdown(t *testing.T) {
	out, _, err := run(t, "solve", "-m", "testdata/triangle.json", "-k", "3", "-f", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "| C | 3 | Green | `#d0f4de` |")
}

func TestSolve_Painting(t *testing.T) {
	out, _, err := run(t, "solve", "-m", "testdata/triangle.txt", "-k", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: solved with 3 colors, 3 regions, 6 steps (6 trials, 0 undos)")
	assert.Contains(t, out, "C  3  Green")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--map", "testdata/missing.yaml", "--colors", "2")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve", "--map", "testdata/triangle.json", "--colors", "2", "--format", "html")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "solve", "--map", "testdata/triangle.json", "--colors", "2", "--max-steps", "5")
	assert.ErrorContains(t, err, "step limit")

	_, _, err = run(t, "solve", "--colors", "2")
	assert.ErrorContains(t, err, "map")
}

func TestSolve_WarnsOnAsymmetricMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one_sided.yaml")
	require.NoError(t, os.WriteFile(path, []byte("A: [B, C]\nB: [C]\nC: []\n"), 0o600))

	out, logs, err := run(t, "solve", "--map", path, "--colors", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "solved with 1 colors")
	assert.Contains(t, logs, "one-sided borders")
}

func TestReplay(t *testing.T) {
	out, _, err := run(t, "replay", "-m", "testdata/triangle.json", "-k", "3", "--step", "2")
	require.NoError(t, err)
	assert.Equal(t, "Step 2/6: Conflict: B cannot be Pink\nA  Pink\nB  -\nC  -\n", out)

	out, _, err = run(t, "replay", "-m", "testdata/triangle.json", "-k", "3")
	require.NoError(t, err)
	assert.Equal(t, "Step 6/6: Region C painted Green\nA  Pink\nB  Yellow\nC  Green\n", out)

	out, _, err = run(t, "replay", "-m", "testdata/triangle.json", "-k", "3", "--step", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 0/6: Step forward to start the search")

	_, _, err = run(t, "replay", "-m", "testdata/triangle.json", "-k", "3", "--step", "7")
	assert.ErrorContains(t, err, "out of range")
}

func TestReplay_All(t *testing.T) {
	out, _, err := run(t, "replay", "-m", "testdata/triangle.json", "-k", "3", "--all")
	require.NoError(t, err)
	assert.Equal(t, 7, bytes.Count([]byte(out), []byte("/6: ")))
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--kind", "wheel", "--n", "5", "--ids", "letter")
	require.NoError(t, err)
	m, err := core.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "Center"}, m.Regions())
	assert.True(t, m.Symmetric())

	out, _, err = run(t, "generate", "--kind", "random", "--n", "10", "--p", "0.4", "--seed", "3", "--prefix", "R", "--format", "json")
	require.NoError(t, err)
	m, err = core.ParseJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 10, m.Len())
	assert.Equal(t, "R0", m.Regions()[0])

	again, _, err := run(t, "generate", "--kind", "random", "--n", "10", "--p", "0.4", "--seed", "3", "--prefix", "R", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_OneSided(t *testing.T) {
	out, _, err := run(t, "generate", "--kind", "complete", "--n", "3", "--one-sided")
	require.NoError(t, err)
	m, err := core.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.False(t, m.Symmetric())
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--kind", "hexagon")
	assert.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, "generate", "--kind", "cycle", "--n", "2")
	assert.ErrorContains(t, err, "too small")

	_, _, err = run(t, "generate", "--ids", "roman")
	assert.ErrorContains(t, err, "unknown id scheme")
}

func TestRoot_BadLogFormat(t *testing.T) {
	_, _, err := run(t, "--log-format", "xml", "version")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mapcolor version dev\n", out)
}
