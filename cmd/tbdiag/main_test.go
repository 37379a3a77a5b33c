package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tbdiag/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoChains = `
log: {level: error}
model:
  lattice: {kind: chain, size: [2], spins: 2, hopping: 1}
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

// execute runs the root command and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRootCmd_Definition(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "tbdiag", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"solve", "blocks"}, names)

	for _, name := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestSolve(t *testing.T) {
	cfg := writeConfig(t, twoChains)
	outPath := filepath.Join(t.TempDir(), "spectrum.yaml")

	out, err := execute(t, "solve", "-c", cfg, "--parallel", "--workers", "2", "--output", outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"STATE", "BLOCK", "ENERGY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "0", "-1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "0", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "1", "1"}, strings.Fields(lines[4]))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	recs, err := serialize.Decode(f)
	require.NoError(t, err)

	counts := map[serialize.Kind]int{}
	for _, r := range recs {
		counts[r.Kind]++
	}
	// 4 on-site + 2 bonds * 2 directions; 4 eigenvalues; 2 blocks * 2 * 2 coefficients.
	assert.Equal(t, 8, counts[serialize.KindHopping])
	assert.Equal(t, 4, counts[serialize.KindEigenValue])
	assert.Equal(t, 8, counts[serialize.KindEigenVector])
}

func TestBlocks(t *testing.T) {
	out, err := execute(t, "blocks", "--config", writeConfig(t, twoChains))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"0", "0", "2", "{0}"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "2", "2", "{1}"}, strings.Fields(lines[2]))
}

func TestCommandErrors(t *testing.T) {
	cfg := writeConfig(t, twoChains)
	tests := []struct {
		name string
		args []string
	}{
		{"missing config", []string{"solve"}},
		{"missing file", []string{"blocks", "-c", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad log level", []string{"blocks", "-c", cfg, "--log-level", "loud"}},
		{"bad log format", []string{"solve", "-c", cfg, "--log-format", "xml"}},
		{"negative iterations", []string{"solve", "-c", cfg, "--max-iterations", "-3"}},
		{"extra args", []string{"solve", "-c", cfg, "extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

// TestBlocks_DebugLog checks the structured build summary on stderr.
func TestBlocks_DebugLog(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"blocks", "-c", writeConfig(t, twoChains), "--log-level", "debug", "--log-format", "json"})
	require.NoError(t, root.Execute())

	logs := errOut.String()
	assert.Contains(t, logs, `"msg":"model built"`)
	assert.Contains(t, logs, `"basis_size":4`)
	assert.Contains(t, logs, `"amplitudes":8`)
	assert.Contains(t, logs, `"blocks":2`)
}
