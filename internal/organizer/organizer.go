// Package organizer relocates music files into a metadata-derived library
// hierarchy and drives the scan, extract, plan, move, log pipeline.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tuneshelf/internal/manifest"
	"tuneshelf/internal/progress"
	"tuneshelf/internal/tags"
)

// DefaultBatchSize bounds how many files are processed between manifest
// flushes.
const DefaultBatchSize = 100

// Config for one organizing run.
type Config struct {
	ScanFolder  string
	BaseFolder  string
	BatchSize   int
	DeleteEmpty bool
}

// Organizer processes music files batch by batch.
type Organizer struct {
	cfg      Config
	tags     tags.Reader
	manifest *manifest.Writer
	progress progress.Reporter
	log      *slog.Logger
}

// New creates an organizer. A nil reporter disables progress output.
func New(cfg Config, reader tags.Reader, mw *manifest.Writer, rep progress.Reporter, log *slog.Logger) *Organizer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if rep == nil {
		rep = progress.Nop{}
	}
	return &Organizer{
		cfg:      cfg,
		tags:     reader,
		manifest: mw,
		progress: rep,
		log:      log,
	}
}

// Summary is the outcome of a run.
type Summary struct {
	Total   int // music files discovered
	Moved   int
	Skipped int // unreadable metadata, or already in place
	Failed  int // move errors
}

// Run processes every music file under the scan folder. Per-file errors are
// reduced to log entries and counted; only conditions that make the run
// itself meaningless (missing scan folder, manifest write failure) return an
// error.
func (o *Organizer) Run(ctx context.Context) (*Summary, error) {
	files, err := FindMusicFiles(o.cfg.ScanFolder)
	if err != nil {
		return nil, err
	}
	o.log.Info("scan complete", "folder", o.cfg.ScanFolder, "files", len(files))

	sum := &Summary{Total: len(files)}

	o.progress.Start(len(files))
	for start := 0; start < len(files); start += o.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		end := min(start+o.cfg.BatchSize, len(files))
		o.processBatch(files[start:end], sum)

		// Completed batches stay durable even if a later one fails.
		if err := o.manifest.Flush(); err != nil {
			return sum, fmt.Errorf("flush manifest: %w", err)
		}
	}
	o.progress.Finish()

	if o.cfg.DeleteEmpty {
		PruneEmptyDirs(o.cfg.ScanFolder, o.log)
	}

	o.log.Info("run complete",
		"total", sum.Total,
		"moved", sum.Moved,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
	)
	return sum, nil
}

func (o *Organizer) processBatch(batch []string, sum *Summary) {
	for _, path := range batch {
		o.processFile(path, sum)
		o.progress.Advance()
	}
}

// processFile runs one file through extract, plan, move, log. The manifest
// row is appended only after the move succeeded, so a missing row never
// hides a moved file the other way around.
func (o *Organizer) processFile(path string, sum *Summary) {
	md, err := o.tags.Read(path)
	if err != nil {
		sum.Skipped++
		if errors.Is(err, tags.ErrNoTags) {
			o.log.Warn("skipping file", "path", path, "error", err)
		} else {
			o.log.Error("read tags", "path", path, "error", err)
		}
		return
	}

	plan := PlanDestination(path, md, o.cfg.BaseFolder)
	final, moved, err := MoveFile(plan.OriginalPath, plan.NewPath)
	if err != nil {
		sum.Failed++
		o.log.Error("move failed", "path", path, "dest", plan.NewPath, "error", err)
		return
	}
	if !moved {
		sum.Skipped++
		o.log.Debug("already in place", "path", path)
		return
	}

	sum.Moved++
	if err := o.manifest.Append(manifest.Record{
		OriginalPath: path,
		Title:        md.Title,
		Artist:       md.Artist,
		Year:         md.Year,
		Album:        md.Album,
		NewPath:      final,
	}); err != nil {
		o.log.Error("manifest append", "path", path, "error", err)
	}
}
