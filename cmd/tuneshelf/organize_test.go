package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

// resetFlags clears the package flag variables and restores them afterwards.
func resetFlags(t *testing.T) {
	t.Helper()
	savedConfig, savedFolder, savedBase := configPath, folderPath, baseFolder
	savedOutput, savedDelete, savedBatch := outputCSV, deleteEmpty, batchSize
	savedLevel := logLevel
	configPath, folderPath, baseFolder, outputCSV = "", "", "", ""
	deleteEmpty, batchSize, logLevel = false, 0, ""
	t.Cleanup(func() {
		configPath, folderPath, baseFolder = savedConfig, savedFolder, savedBase
		outputCSV, deleteEmpty, batchSize = savedOutput, savedDelete, savedBatch
		logLevel = savedLevel
	})
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	resetFlags(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Scan.Folder)
	assert.Equal(t, 100, cfg.Scan.BatchSize)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	resetFlags(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[scan]
folder = "/from/file"
batch_size = 50
`), 0644))

	configPath = path
	folderPath = "/from/flag"
	batchSize = 10
	deleteEmpty = true

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Scan.Folder, "flag wins over file")
	assert.Equal(t, 10, cfg.Scan.BatchSize)
	assert.True(t, cfg.Scan.DeleteEmpty)
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "nope.toml")

	_, err := loadConfig()
	assert.Error(t, err)
}
