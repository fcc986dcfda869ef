package log

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core).Named("query").With(String("scenario", "demo"))

	logger.Info("closest point",
		Vec("point", mgl64.Vec3{1, 2, 3}),
		Float("distance", 2.5),
		Bool("hit", true),
		Int("index", 4),
	)
	logger.Error("load failed", Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0]
	require.Equal(t, "closest point", first.Message)
	require.Equal(t, "query", first.LoggerName)

	fields := first.ContextMap()
	require.Equal(t, "demo", fields["scenario"])
	require.Equal(t, []interface{}{1.0, 2.0, 3.0}, fields["point"])
	require.Equal(t, 2.5, fields["distance"])
	require.Equal(t, true, fields["hit"])
	require.EqualValues(t, 4, fields["index"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
}
