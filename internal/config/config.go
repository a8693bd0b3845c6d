// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Scan     ScanConfig     `toml:"scan"`
	Library  LibraryConfig  `toml:"library"`
	Manifest ManifestConfig `toml:"manifest"`
}

type ScanConfig struct {
	Folder      string `toml:"folder"`
	BatchSize   int    `toml:"batch_size"`
	DeleteEmpty bool   `toml:"delete_empty"`
}

type LibraryConfig struct {
	Base string `toml:"base"`
}

type ManifestConfig struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no config file is given.
// The manifest name carries the run date, one manifest per day.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Scan: ScanConfig{
			Folder:    ".",
			BatchSize: 100,
		},
		Library: LibraryConfig{
			Base: ".",
		},
		Manifest: ManifestConfig{
			Path: fmt.Sprintf("musics_%s.csv", time.Now().Format("20060102")),
		},
	}
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	def := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Scan.Folder == "" {
		cfg.Scan.Folder = def.Scan.Folder
	}
	if cfg.Scan.BatchSize == 0 {
		cfg.Scan.BatchSize = def.Scan.BatchSize
	}
	if cfg.Library.Base == "" {
		cfg.Library.Base = def.Library.Base
	}
	if cfg.Manifest.Path == "" {
		cfg.Manifest.Path = def.Manifest.Path
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
