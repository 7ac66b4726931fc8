package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLoggerSafeBeforeInitialize(t *testing.T) {
	// The package-level no-op logger must absorb calls made before Initialize.
	require.NotNil(t, Logger)
	Infow("should not panic", "key", "value")
	Errorw("should not panic either")
}

func TestInitialize(t *testing.T) {
	err := Initialize(false, VerbosityInfo)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	err = Initialize(true, VerbosityUser)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
}
