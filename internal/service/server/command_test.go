package server

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/alarm-bot/internal/logger"
)

// TestResolveListenAddress covers override, port extraction and errors.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	address, err := resolveListenAddress("alarm.example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", address)

	address, err = resolveListenAddress("alarm.example.com:8080", "127.0.0.1:9090")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", address)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestApplyLogLevel verifies the override wins and bad names are rejected.
// It mutates the global logger level, so it does not run in parallel.
func TestApplyLogLevel(t *testing.T) {
	previous := logger.Level()

	t.Cleanup(func() {
		logger.SetLevel(previous)
	})

	require.NoError(t, applyLogLevel("info", "debug"))
	require.Equal(t, zapcore.DebugLevel, logger.Level())

	require.NoError(t, applyLogLevel("warn", ""))
	require.Equal(t, zapcore.WarnLevel, logger.Level())

	require.ErrorIs(t, applyLogLevel("info", "loud"), errUnknownLogLevel)
}
