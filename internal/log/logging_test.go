package log_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ts3go/ts3plugin/internal/log"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in      string
		want    slog.Level
		wantErr bool
	}

	testCases := []testCase{
		{in: "trace", want: log.LevelTrace},
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		got, err := log.ParseLevel(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestConsoleSplitsErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(log.NewConsole(slog.LevelDebug, &stdout, &stderr))

	logger.Debug("rendering", "entity", "Channel")
	logger.Info("generated")
	logger.Error("stale output")

	assert.Contains(t, stdout.String(), "msg=rendering entity=Channel")
	assert.Contains(t, stdout.String(), "msg=generated")
	assert.NotContains(t, stdout.String(), "stale output")
	assert.Contains(t, stderr.String(), "msg=\"stale output\"")
	assert.NotContains(t, stderr.String(), "generated")
}

func TestConsoleLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(log.NewConsole(slog.LevelWarn, &stdout, &stderr)).With("run", 1)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "msg=shown run=1")
}

func TestSetupLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts3gen.log")
	logger, closers, err := log.SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("written to file")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")

	_, _, err = log.SetupLogger("loud", "")
	assert.Error(t, err)
}
