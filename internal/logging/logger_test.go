package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestSilentWithoutLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	require.NoError(t, InitializeFromEnv())
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	assert.Error(t, InitializeToFile("debug", ""))

	path := filepath.Join(t.TempDir(), "demo.log")
	require.NoError(t, InitializeToFile("debug", path))
	LogIgnored("slider", "key right", "disabled")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "input ignored")
	assert.Contains(t, string(data), "disabled")
}

func TestTransitionFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogTransition("tabs", "activate", "a", "b")
	LogIgnored("tabs", "click", "item disabled")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "state transition", entries[0].Message)
	assert.Equal(t, map[string]any{"engine": "tabs", "event": "activate", "from": "a", "to": "b"}, entries[0].ContextMap())
	assert.Equal(t, "item disabled", entries[1].ContextMap()["reason"])
}
