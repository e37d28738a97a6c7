package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatingclock/internal/logger"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, filepath.Join(tmpDir, "floatingclock.log"), log.GetLogPath())
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	log.Info("hello")
	assert.DirExists(t, dir)
	assert.FileExists(t, log.GetLogPath())
}

func TestGetLogPath_Default(t *testing.T) {
	path := logger.GetLogPath(logger.LoggerOptions{})
	assert.True(t, filepath.IsAbs(path), "log path should be absolute: %s", path)
	assert.Equal(t, "floatingclock.log", filepath.Base(path))
	assert.Equal(t, "FloatingClock", filepath.Base(filepath.Dir(path)))
}

func TestTraceGoesToFileOnly(t *testing.T) {
	tmpDir := t.TempDir()
	console := &bytes.Buffer{}

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir, Verbose: true, Console: console})
	require.NoError(t, err)

	log.Trace("drag frame", "x", 10, "y", 20)
	log.Close()

	assert.Empty(t, console.String())

	data, err := os.ReadFile(log.GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "drag frame")
	assert.Contains(t, string(data), "x=10")
}

func TestConsoleVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &bytes.Buffer{}
			log, err := logger.NewLogger(logger.LoggerOptions{
				LogDir:  t.TempDir(),
				Verbose: tt.verbose,
				Console: console,
			})
			require.NoError(t, err)
			defer log.Close()

			log.Debug("debug line")
			log.Info("info line", "handle", 42)
			log.Warn("warn line")
			log.Error("error line")

			out := console.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(console.Bytes(), []byte("VERBOSE: debug line")))
			assert.Contains(t, out, "info line handle=42\n")
			assert.Contains(t, out, "WARNING: warn line\n")
			assert.Contains(t, out, "ERROR: error line\n")
		})
	}
}

func TestNoOpLogger(t *testing.T) {
	var log logger.LoggerInterface = logger.NewNoOpLogger()
	log.Trace("x")
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	log.Close()
	assert.Empty(t, log.GetLogPath())
}
