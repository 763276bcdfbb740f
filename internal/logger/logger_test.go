package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_ProductionUsesJSON(t *testing.T) {
	logger, err := New("production")
	require.NoError(t, err)
	defer logger.Sync()

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel),
		"production logger must not emit debug entries")
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_DevelopmentEnablesDebug(t *testing.T) {
	logger, err := New("development")
	require.NoError(t, err)
	defer logger.Sync()

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithDefaults_NeverReturnsNil(t *testing.T) {
	t.Setenv("SERVER_ENV", "")

	logger := NewWithDefaults()
	require.NotNil(t, logger)
	logger.Sync()
}
