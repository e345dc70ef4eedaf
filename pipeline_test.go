package tweets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func pipelinePaths(t *testing.T) RunPaths {
	dir := t.TempDir()
	return RunPaths{
		Training:    writeFile(t, dir, "train.csv", "4,1,ts,q,u,good great\n0,2,ts,q,u,bad\n"),
		Testing:     writeFile(t, dir, "test.csv", "10,ts,q,u,good great\n"),
		Gold:        writeFile(t, dir, "gold.csv", "4\n"),
		Predictions: filepath.Join(dir, "predictions.csv"),
		Diagnostics: filepath.Join(dir, "accuracy.txt"),
	}
}

func TestPipelineRun(t *testing.T) {
	paths := pipelinePaths(t)
	p := NewPipeline(TrainingConfig{Logger: quietLogger()})

	result, err := p.Run(paths)
	require.NoError(t, err)

	assert.True(t, result.Evaluated)
	assert.Equal(t, 1, result.Training.Positive)
	assert.Equal(t, 1, result.Training.Negative)
	assert.Equal(t, 1.0, result.Evaluation.Accuracy)
	assert.Equal(t, "4,10\n", readFile(t, paths.Predictions))
	assert.Equal(t, "1.000\n", readFile(t, paths.Diagnostics))
}

func TestPipelineMissingTrainingStillTests(t *testing.T) {
	paths := pipelinePaths(t)
	paths.Training = filepath.Join(t.TempDir(), "missing.csv")
	p := NewPipeline(TrainingConfig{Logger: quietLogger()})

	result, err := p.Run(paths)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))

	// empty corpus: every record ties at 0/0
	assert.True(t, result.Evaluated)
	assert.Equal(t, "0,10\n", readFile(t, paths.Predictions))
	assert.Equal(t, "0,4\n0.000\n", readFile(t, paths.Diagnostics))
}

func TestPipelineResourceFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunPaths, string)
		op     string
	}{
		{"missing test file", func(p *RunPaths, dir string) { p.Testing = filepath.Join(dir, "none.csv") }, "open"},
		{"missing gold file", func(p *RunPaths, dir string) { p.Gold = filepath.Join(dir, "none.csv") }, "open"},
		{"unwritable predictions", func(p *RunPaths, dir string) { p.Predictions = filepath.Join(dir, "no", "such", "p.csv") }, "create"},
		{"unwritable diagnostics", func(p *RunPaths, dir string) { p.Diagnostics = filepath.Join(dir, "no", "such", "a.txt") }, "create"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := pipelinePaths(t)
			tt.mutate(&paths, t.TempDir())

			result, err := NewPipeline(TrainingConfig{Logger: quietLogger()}).Run(paths)
			require.Error(t, err)
			assert.False(t, result.Evaluated)
			assert.Equal(t, 1, result.Training.Positive, "training still completes")

			var rerr *ResourceError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.op, rerr.Op)
		})
	}
}

func TestPipelineFailureLeavesOutputsUntouched(t *testing.T) {
	t.Run("new predictions file is removed", func(t *testing.T) {
		paths := pipelinePaths(t)
		paths.Diagnostics = filepath.Join(t.TempDir(), "no", "such", "a.txt")

		_, err := NewPipeline(TrainingConfig{Logger: quietLogger()}).Run(paths)
		require.ErrorIs(t, err, ErrResourceUnavailable)
		assert.NoFileExists(t, paths.Predictions)
	})

	t.Run("existing predictions keep their content", func(t *testing.T) {
		paths := pipelinePaths(t)
		require.NoError(t, os.WriteFile(paths.Predictions, []byte("4,1\n"), 0o600))
		paths.Diagnostics = filepath.Join(t.TempDir(), "no", "such", "a.txt")

		_, err := NewPipeline(TrainingConfig{Logger: quietLogger()}).Run(paths)
		require.ErrorIs(t, err, ErrResourceUnavailable)
		assert.Equal(t, "4,1\n", readFile(t, paths.Predictions))
	})

	t.Run("missing gold file creates nothing", func(t *testing.T) {
		paths := pipelinePaths(t)
		paths.Gold = filepath.Join(t.TempDir(), "none.csv")

		_, err := NewPipeline(TrainingConfig{Logger: quietLogger()}).Run(paths)
		require.ErrorIs(t, err, ErrResourceUnavailable)
		assert.NoFileExists(t, paths.Predictions)
		assert.NoFileExists(t, paths.Diagnostics)
	})
}

func TestPipelineOverwritesPreviousOutputs(t *testing.T) {
	paths := pipelinePaths(t)
	require.NoError(t, os.WriteFile(paths.Predictions, []byte("0,99\n0,98\n0,97\n"), 0o600))
	require.NoError(t, os.WriteFile(paths.Diagnostics, []byte("stale\n"), 0o600))

	_, err := NewPipeline(TrainingConfig{Logger: quietLogger()}).Run(paths)
	require.NoError(t, err)
	assert.Equal(t, "4,10\n", readFile(t, paths.Predictions))
	assert.Equal(t, "1.000\n", readFile(t, paths.Diagnostics))
}
