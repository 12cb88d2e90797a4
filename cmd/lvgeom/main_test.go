// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/pipeline"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	doc := "name: chain\nsteps:\n  - op: translate\n    offset: [1, 2, 3]\n  - op: scale\n    factors: [1, -1, 1]\n  - op: classify\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, logs, err := execute(t, "eval", path)
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline chain")
	assert.Contains(t, out, "post")
	assert.Contains(t, out, "tracked:    orthonormal|affine (orthonormal-affine)")
	assert.Contains(t, out, "classified: orthonormal|affine")
	assert.Contains(t, logs, "pipeline evaluated")
	assert.NotContains(t, out, "\x1b[", "no styling when not a terminal")
}

func TestEval_Errors(t *testing.T) {
	_, _, err := execute(t, "eval", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nsteps:\n  - op: warp\n"), 0o600))
	_, _, err = execute(t, "eval", path)
	require.ErrorIs(t, err, pipeline.ErrUnknownOp)

	_, _, err = execute(t, "eval")
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, _, err := execute(t, "classify", "1", "0", "0", "0", "0", "1", "0", "0", "0", "0", "1", "0", "5", "6", "7", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "tracked:    translation|orthonormal|affine (translation)")

	out, _, err = execute(t, "classify", "2", "0", "0", "0", "0", "1", "0", "0", "0", "0", "1", "0", "0", "0", "-1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "(perspective)")

	_, _, err = execute(t, "classify", "1", "2")
	require.Error(t, err)

	args := append([]string{"classify"}, strings.Fields("x 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1")...)
	_, _, err = execute(t, args...)
	require.ErrorContains(t, err, "entry v0")

	args = append([]string{"classify", "--epsilon", "-1"}, strings.Fields("1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1")...)
	_, _, err = execute(t, args...)
	require.ErrorContains(t, err, "--epsilon")
}

func TestAudit(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "audit.prom")
	out, logs, err := execute(t, "audit", "--runs", "3", "--steps", "40", "--seed", "5", "--workers", "2", "--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "audit 3 runs x 40 steps, seed 5")
	assert.Contains(t, out, "no violations")
	assert.Contains(t, logs, "audit finished")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lvgeom_audit_steps_total")
}

func TestAudit_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "audit", "--runs", "0")
	require.Error(t, err)

	_, _, err = execute(t, "audit", "--tolerance", "-1")
	require.ErrorContains(t, err, "--tolerance")

	_, _, err = execute(t, "--log-level", "loud", "audit", "--runs", "1", "--steps", "1")
	require.ErrorContains(t, err, "--log-level")
}
