package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/objlist/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	config.Load()
	return tmp
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("OBJLIST_LOGGING_ENABLED", "true")
	t.Setenv("OBJLIST_LOGGING_LEVEL", "warn")
	t.Setenv("OBJLIST_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("OBJLIST_DEBUG", "true")
	t.Setenv("OBJLIST_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("OBJLIST_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level, "debug wins over quiet")

	t.Setenv("OBJLIST_DEBUG", "false")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "objlist", "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	tmp := setupTest(t)

	logger, err := Init(Config{Enabled: true, Level: "info", MaxFiles: 3, Command: "tui", PID: 42})
	require.NoError(t, err)
	logger.Info("window shown", "window", "objects")
	require.NoError(t, logger.Shutdown())

	matches, err := filepath.Glob(filepath.Join(tmp, "objlist", "logs", "objlist_*_PID42_tui.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "window shown", entry["msg"])
	assert.Equal(t, "objects", entry["window"])
	assert.Equal(t, "tui", entry["command"])
}

func TestLoggingWritesJSONAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "count", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "debug")
	child := base.With("component", "registry")

	child.Debug("open")
	base.Debug("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"component":"registry"`)
	assert.NotContains(t, lines[1], "component")
}

func TestRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Info("catalog loaded", "api_key", "abc123", "keyboard", "qwerty", "auth-token", "xyz")

	out := buf.String()
	assert.NotContains(t, out, "abc123")
	assert.NotContains(t, out, "xyz")
	assert.Contains(t, out, "qwerty")
	assert.Contains(t, out, "[REDACTED]")
}

func TestRedactorEdgeCases(t *testing.T) {
	r := newRedactor()

	assert.Empty(t, r.redact(nil))
	odd := r.redact([]any{"password"})
	assert.Equal(t, []any{"password"}, odd)
	nonString := r.redact([]any{1, "secret"})
	assert.Equal(t, []any{1, "secret"}, nonString)
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("objlist_%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	other := filepath.Join(dir, "other.log")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0600))

	require.NoError(t, rotate(dir, 2))

	remaining, err := filepath.Glob(filepath.Join(dir, "objlist_*.log"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "objlist_3.log"),
		filepath.Join(dir, "objlist_4.log"),
	}, remaining)
	assert.FileExists(t, other)
}

func TestRotationDisabled(t *testing.T) {
	require.NoError(t, rotate("/does/not/matter", 0))
}

func TestGlobalLogger(t *testing.T) {
	defer SetGlobal(nil)

	SetGlobal(nil)
	assert.IsType(t, noopLogger{}, GetGlobal())
	assert.Empty(t, CurrentLogFile())

	var buf bytes.Buffer
	SetGlobal(New(&buf, "info"))
	With("window", "parts").Info("hello")
	assert.Contains(t, buf.String(), `"window":"parts"`)
	require.NoError(t, ShutdownGlobal())
	assert.IsType(t, noopLogger{}, GetGlobal())
}
