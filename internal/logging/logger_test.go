package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cssbridge/cssbridge/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, logging.ParseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, logging.ParseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel("PRODUCTION"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel("bogus"))
}

func TestNew_RespectsLevel(t *testing.T) {
	l := logging.New("WARN", logging.FormatJSON)
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestInitialize_DebugForcesDebugLevel(t *testing.T) {
	t.Setenv("LOGGING_LEVEL", "ERROR")
	l := logging.Initialize(true)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.Same(t, l, zap.L())
}

func TestInitialize_UsesEnvironmentLevel(t *testing.T) {
	t.Setenv("LOGGING_LEVEL", "ERROR")
	l := logging.Initialize(false)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
}
