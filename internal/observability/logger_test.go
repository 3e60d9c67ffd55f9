package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mkacz/turnip/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInitializeJSON(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "turnip-test"}, zapcore.AddSync(&buf))
	logger := GetLogger()
	logger.Debug("filtered")
	logger.Warn("loaded world", zap.Int("loops", 3))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be a single JSON object")
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "turnip-test", entry["logger"])
	assert.Equal(t, "loaded world", entry["msg"])
	assert.Equal(t, 3.0, entry["loops"])
	assert.NotEmpty(t, entry["run"])
}

func TestInitializeConsole(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "console", ServiceName: "svc"}, zapcore.AddSync(&buf))
	GetLogger().Debug("hello")
	Sync()

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "svc.")
	assert.Contains(t, out, "hello")
}

func TestInitializeOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&second))
	GetLogger().Info("once")

	assert.Contains(t, first.String(), "once")
	assert.Empty(t, second.String())
}

func TestInitializeBadLevel(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&buf))
	GetLogger().Debug("hidden")
	GetLogger().Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	ResetForTest()
	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
}
