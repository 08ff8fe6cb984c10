package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/internal/codec"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Stdin(t *testing.T) {
	code, out, errOut := runCLI(t, `{"a": [[2, 1], [1, 3]], "b": [3, 5]}`)
	require.Equal(t, exitOK, code, errOut)

	var sol codec.Solution
	require.NoError(t, sonic.Unmarshal([]byte(out), &sol))
	assert.Equal(t, 2, sol.N)
	assert.InDeltaSlice(t, []float64{0.8, 1.4}, sol.X, 1e-12)
}

func TestRun_FileFormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a:\n  - [4]\nb: [2]\n"), 0o600))

	code, out, errOut := runCLI(t, "", "-in", path, "-out", "yaml")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "x:")
	assert.Contains(t, out, "0.5")
}

func TestRun_Failures(t *testing.T) {
	code, _, errOut := runCLI(t, `{"a": [[1, 2], [2, 4]], "b": [1, 2]}`)
	assert.Equal(t, exitSolve, code)
	assert.Contains(t, errOut, "singular system")

	code, _, errOut = runCLI(t, `{"a": [[1, 0], [0, 1]], "b": [1]}`)
	assert.Equal(t, exitSolve, code)
	assert.Contains(t, errOut, "dimension mismatch")

	code, _, _ = runCLI(t, `not json`)
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, `{}`, "-format", "xml")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, `{}`, "extra")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-in", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitUsage, code)
}

func TestRun_Tolerance(t *testing.T) {
	doc := `{"a": [[1e-6, 0], [0, 1]], "b": [1, 1]}`

	code, _, _ := runCLI(t, doc)
	assert.Equal(t, exitOK, code)

	code, _, errOut := runCLI(t, doc, "-tol", "1e-3")
	assert.Equal(t, exitSolve, code)
	assert.Contains(t, errOut, "column 0")

	code, _, _ = runCLI(t, doc, "-tol", "-1")
	assert.Equal(t, exitUsage, code)
}

func TestRun_OverflowingSolution(t *testing.T) {
	code, out, errOut := runCLI(t, `{"a": [[0.5]], "b": [1.7e308]}`)
	assert.Equal(t, exitSolve, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "solution is not finite")

	code, _, _ = runCLI(t, "a:\n  - [.inf]\nb: [1]\n", "-format", "yaml")
	assert.Equal(t, exitSolve, code)
}
