package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisa/content-optimizer/internal/types"
)

func TestTargetsCommand_EndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	benchmarks := types.PreciseBenchmarks{
		AverageWordCount:         1620,
		AverageKeywordDensity:    2.62,
		AverageOptimizedHeadings: 5,
	}
	data, err := json.Marshal(benchmarks)
	require.NoError(t, err)
	inPath := filepath.Join(dir, "benchmarks.json")
	require.NoError(t, os.WriteFile(inPath, data, 0644))
	outPath := filepath.Join(dir, "targets.json")

	cmd := exec.Command(binaryPath, "targets", "--in", inPath, "--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var targets types.ExactTargets
	require.NoError(t, json.Unmarshal(raw, &targets))
	assert.Equal(t, 1620, targets.TargetWordCount)
	assert.Equal(t, 2.62, targets.TargetKeywordDensity)
	assert.Equal(t, 5, targets.TargetOptimizedHeadings)
}

func TestTargetsCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "targets", "--in", "benchmarks.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestTargetsCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	cmd := exec.Command(binaryPath, "targets",
		"--in", filepath.Join(dir, "missing.json"),
		"--out", filepath.Join(dir, "targets.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read input file")
}
