package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akmonengine/geoquery/internal/log"
	"github.com/akmonengine/geoquery/internal/scenario"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const demoScenario = "../../internal/scenario/testdata/demo.yaml"

func TestRunLogsEveryQuery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := log.NewWithCore(core)

	err := run(context.Background(), logger, options{workers: 4}, []string{demoScenario, demoScenario})
	require.NoError(t, err)

	entries := logs.FilterMessage("query").All()
	require.Len(t, entries, 30)

	first := entries[0].ContextMap()
	require.Equal(t, "project-3-4", first["id"])
	require.Equal(t, "project", first["kind"])
	require.Equal(t, 3.0, first["scalar"])
	require.Equal(t, "demo", entries[0].LoggerName)
}

func TestRunMissingFile(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	err := run(context.Background(), log.NewWithCore(core), options{}, []string{demoScenario, "missing.yaml"})
	require.Error(t, err)
}

func TestRunRejectsNegativeEpsilon(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	err := run(context.Background(), log.NewWithCore(core), options{epsilon: -1}, []string{demoScenario})
	require.ErrorIs(t, err, scenario.ErrInvalidEpsilon)
}

func TestEvaluateEpsilonOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: short
queries:
  - id: short
    kind: closest-on-segment
    point: [0.25, 1, 0]
    segment:
      start: [0, 0, 0]
      end: [0.5, 0, 0]
`), 0o644))

	doc, err := scenario.LoadFile(path)
	require.NoError(t, err)

	core, _ := observer.New(zapcore.InfoLevel)
	logger := log.NewWithCore(core)

	fine := evaluate(logger, options{}, doc)
	coarse := evaluate(logger, options{epsilon: 1.0}, doc)

	require.InDelta(t, 1.0, fine[0].Scalar, 1e-9)
	require.InDelta(t, 1.0307764064044151, coarse[0].Scalar, 1e-9)
}
