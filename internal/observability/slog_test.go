package observability

import (
	"bytes"
	"context"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/mkacz/turnip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := slog.New(NewSlogHandler(zap.New(core)))

	l.Debug("support hand-off", slog.Int("handoffs", 2), slog.Any("kind", turnip.SegmentSupport))
	l.With("loop", 3).Warn("empty loop")
	l.WithGroup("body").Info("landed", "speed", 1.5, slog.Group("pos", "x", 1.0))
	l.Error("failed", "ok", false)

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "support hand-off", entries[0].Message)
	assert.Equal(t, map[string]any{"handoffs": int64(2), "kind": "segment"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(3), entries[1].ContextMap()["loop"])

	assert.Equal(t, map[string]any{
		"body": map[string]any{"speed": 1.5, "pos": map[string]any{"x": 1.0}},
	}, entries[2].ContextMap())

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, false, entries[3].ContextMap()["ok"])
}

func TestSlogHandlerEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := NewSlogHandler(zap.New(core))

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))

	slog.New(h).Info("dropped")
	assert.Zero(t, logs.Len())
}

func TestSlogLoggerName(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewSlogLogger(zap.New(core).Named("cmd"), "core").Info("ready")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cmd.core", entries[0].LoggerName)
}

func TestLibraryLogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	turnip.SetLogger(NewSlogLogger(zap.New(core), "turnip"))
	t.Cleanup(func() { turnip.SetLogger(nil) })

	// A world file whose second loop header is empty.
	var buf bytes.Buffer
	for _, v := range []any{int32(2), int32(1), [2]float32{1, 2}, int32(0)} {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, v))
	}
	w := turnip.NewWorld()
	_, err := w.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Len())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "turnip", warnings[0].LoggerName)
	assert.Equal(t, int64(1), warnings[0].ContextMap()["loop"])
}
