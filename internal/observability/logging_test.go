package observability_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/config"
	"github.com/cory-johannsen/route1/internal/observability"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewLogger_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.log")
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("wild creature appeared", zap.String("species", "pidgey"))
	require.NoError(t, logger.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &rec))
	assert.Equal(t, "wild creature appeared", rec["msg"])
	assert.Equal(t, "pidgey", rec["species"])
	assert.Equal(t, "route", rec["logger"])
	assert.Equal(t, "info", rec["level"])
}

func TestNewLogger_ConsoleToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.log")
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "debug", Format: "console", Output: path})
	require.NoError(t, err)

	logger.Debug("encounter check")
	require.NoError(t, logger.Sync())
	assert.Contains(t, readLog(t, path), "encounter check")
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.log")
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("battle started")
	logger.Warn("journey aborted")
	require.NoError(t, logger.Sync())

	out := readLog(t, path)
	assert.NotContains(t, out, "battle started")
	assert.Contains(t, out, "journey aborted")
}

func TestNewLogger_EmptyOutputDefaultsToStderr(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := observability.NewLogger(config.LoggingConfig{Level: level, Format: "json", Output: "stderr"})
		assert.NoError(t, err, "level %q should be valid", level)
	}
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	cases := map[string]config.LoggingConfig{
		"level":  {Level: "trace", Format: "json", Output: "stderr"},
		"format": {Level: "info", Format: "xml", Output: "stderr"},
		"output": {Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "missing", "route.log")},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := observability.NewLogger(cfg)
			assert.Error(t, err)
		})
	}
}
