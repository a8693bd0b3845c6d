package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tuneshelf/internal/config"
	"tuneshelf/internal/manifest"
	"tuneshelf/internal/organizer"
	"tuneshelf/internal/progress"
	"tuneshelf/internal/tags"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig builds the effective configuration: config file (or defaults)
// with flag values layered on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if folderPath != "" {
		cfg.Scan.Folder = folderPath
	}
	if baseFolder != "" {
		cfg.Library.Base = baseFolder
	}
	if outputCSV != "" {
		cfg.Manifest.Path = outputCSV
	}
	if batchSize > 0 {
		cfg.Scan.BatchSize = batchSize
	}
	if deleteEmpty {
		cfg.Scan.DeleteEmpty = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: configPath, Errors: errs}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	mw, err := manifest.Create(cfg.Manifest.Path)
	if err != nil {
		return err
	}

	var reporter progress.Reporter = progress.Nop{}
	if !quiet {
		reporter = progress.NewBar()
	}

	org := organizer.New(organizer.Config{
		ScanFolder:  cfg.Scan.Folder,
		BaseFolder:  cfg.Library.Base,
		BatchSize:   cfg.Scan.BatchSize,
		DeleteEmpty: cfg.Scan.DeleteEmpty,
	}, tags.FileReader{}, mw, reporter, logger)

	sum, runErr := org.Run(cmd.Context())
	if cerr := mw.Close(); cerr != nil && runErr == nil {
		runErr = fmt.Errorf("close manifest: %w", cerr)
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Organized %d of %d files (%d skipped, %d failed)\n",
		sum.Moved, sum.Total, sum.Skipped, sum.Failed)
	return nil
}
