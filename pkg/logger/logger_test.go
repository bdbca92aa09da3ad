package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("successful creation", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("missing directory is created", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "nested", "log", "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "app.log")
	rotatedLogFilePath := filepath.Join(tempDir, "app.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	contentOld, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(contentNew))
}

func TestReloadOnSignal(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "app.log")
	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	signals := make(chan struct{})
	done := make(chan struct{})
	go func() {
		ReloadOnSignal(zap.NewNop(), ws, signals)
		close(done)
	}()

	require.NoError(t, os.Rename(logFilePath, logFilePath+".1"))
	signals <- struct{}{}
	close(signals)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ReloadOnSignal did not return after the channel was closed")
	}
	_, err = os.Stat(logFilePath)
	assert.NoError(t, err)
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(filepath.Join(t.TempDir(), "app.log"))
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name            string
		logLevel        string
		expectedLevel   zapcore.Level
		disabledBelowIt bool
	}{
		{"debug level", "debug", zap.DebugLevel, false},
		{"info level", "info", zap.InfoLevel, true},
		{"warn level", "warn", zap.WarnLevel, true},
		{"error level", "error", zap.ErrorLevel, true},
		{"fatal level", "fatal", zap.FatalLevel, true},
		{"invalid level", "invalid", zap.InfoLevel, true},
		{"empty level", "", zap.InfoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, ws, "monitoring-service")
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
			if tc.disabledBelowIt {
				assert.False(t, logger.Core().Enabled(tc.expectedLevel-1))
			}
		})
	}
}

func TestNewLogger_WritesServiceName(t *testing.T) {
	logFilePath := filepath.Join(t.TempDir(), "app.log")
	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	logger := NewLogger("info", ws, "result-indexer")
	logger.Info("indexed", zap.String("endpoint_id", "e-1"))
	require.NoError(t, ws.Sync())

	content, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"service.name":"result-indexer"`)
	assert.Contains(t, string(content), `"level":"INFO"`)
	assert.Contains(t, string(content), `"endpoint_id":"e-1"`)
}
