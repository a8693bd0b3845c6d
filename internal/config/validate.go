// internal/config/validate.go
package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Scan.BatchSize < 1 {
		errs = append(errs, fmt.Sprintf("scan.batch_size: must be at least 1, got %d", c.Scan.BatchSize))
	}

	if info, err := os.Stat(c.Scan.Folder); err != nil {
		errs = append(errs, fmt.Sprintf("scan.folder: %v", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Sprintf("scan.folder: %s is not a directory", c.Scan.Folder))
	}

	if c.Manifest.Path == "" {
		errs = append(errs, "manifest.path: required")
	}

	return errs
}
