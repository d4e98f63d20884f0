// SPDX-License-Identifier: MIT

package experiment_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/experiment"
	"github.com/katalvlaran/multicut/matching"
)

func smallConfig() experiment.Config {
	return experiment.Config{
		Parallelism: 3,
		Timeout:     time.Minute,
		Instances: []experiment.Instance{
			{Name: "star", Generator: experiment.GenStar, Nodes: 99, Repetitions: 1},
			{Name: "k6", Generator: experiment.GenComplete, Nodes: 6, Repetitions: 2},
			{Name: "er", Generator: experiment.GenErdosRenyi, Nodes: 60, Probability: 0.05, Seed: 9, Repetitions: 3, Connect: true},
			{Name: "threshold", Generator: experiment.GenPath, Nodes: 10, AtLeast: 6, Repetitions: 1},
			{Name: "broken", Generator: experiment.GenCycle, Nodes: 2, Repetitions: 1},
		},
	}
}

func TestRunner_Run(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	total := counter.New()
	r, err := experiment.NewRunner(smallConfig(),
		experiment.WithLogger(zap.New(obs)), experiment.WithSink(total))
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 8)

	byName := map[string][]experiment.Result{}
	ids := map[uuid.UUID]bool{}
	for _, res := range results {
		byName[res.Instance] = append(byName[res.Instance], res)
		ids[res.RunID] = true
	}
	assert.Len(t, ids, 8, "run IDs must be unique")

	star := byName["star"][0]
	assert.Equal(t, experiment.StatusOK, star.Status)
	assert.Equal(t, 1, star.MatchingSize)
	assert.Equal(t, 100, star.Nodes)
	assert.Equal(t, 99, star.Edges)

	for _, res := range byName["k6"] {
		assert.Equal(t, 3, res.MatchingSize)
	}
	for rep, res := range byName["er"] {
		assert.Equal(t, rep, res.Repetition)
		assert.Equal(t, int64(9+rep), res.Seed)
		assert.Equal(t, experiment.StatusOK, res.Status)
		assert.Positive(t, res.MatchingSize)
	}

	th := byName["threshold"][0]
	assert.Equal(t, experiment.StatusOK, th.Status)
	assert.False(t, th.Satisfied)
	assert.Equal(t, -1, th.MatchingSize)

	broken := byName["broken"][0]
	assert.Equal(t, experiment.StatusError, broken.Status)
	assert.NotEmpty(t, broken.Err)

	assert.Equal(t, 7, logs.FilterMessage("run finished").Len())
	assert.Equal(t, 1, logs.FilterMessage("build failed").Len())
	assert.Positive(t, total.Value(matching.OpSearch), "extra sink sees every run")
}

func TestRunner_Timeout(t *testing.T) {
	cfg := experiment.Config{
		Parallelism: 1,
		Timeout:     time.Nanosecond,
		Instances: []experiment.Instance{
			{Name: "dense", Generator: experiment.GenErdosRenyi, Nodes: 400, Probability: 0.5, Seed: 1, Repetitions: 1},
		},
	}
	r, err := experiment.NewRunner(cfg)
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, experiment.StatusTimeout, results[0].Status)
	assert.Equal(t, -1, results[0].MatchingSize)
}

func TestRunner_Cancelled(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	_, err := experiment.NewRunner(experiment.Config{Parallelism: 1})
	require.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

func TestWriteCSV(t *testing.T) {
	r, err := experiment.NewRunner(smallConfig())
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteCSV(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(results)+1)
	assert.Equal(t, experiment.CSVHeader(), rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(rows[0]))
	}
	assert.Equal(t, "star", rows[1][1])
	assert.Equal(t, "1", rows[1][6])
	assert.Equal(t, "ok", rows[1][9])
}
