package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStateHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			useStateHome(t, tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "zat", "zat.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	useStateHome(t, "/custom/state")

	got := getLogFilePath()
	assert.Equal(t, filepath.Join("/custom/state", "zat", "zat.log"), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("processor")
	logger.Info().Msg("walking template")

	assert.Contains(t, buf.String(), `"component":"processor"`)
	assert.Contains(t, buf.String(), "walking template")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{"target": "/tmp/out"})
	logger.Info().Msg("done")

	assert.Contains(t, buf.String(), `"target":"/tmp/out"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "expand")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand(logger, "/bin/plugin", []string{"-n", "value"})

	out := buf.String()
	assert.Contains(t, out, "/bin/plugin")
	assert.Contains(t, out, "Executing command")
}

func TestRunID(t *testing.T) {
	require.NotEmpty(t, runID)
}
