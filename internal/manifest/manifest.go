// internal/manifest/manifest.go

// Package manifest records the CSV audit trail of organized files.
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Header is the audit trail's column layout.
var Header = []string{"original_path", "title", "artist", "year", "album", "new_path"}

// Record is one row of the audit trail, written after a successful move.
type Record struct {
	OriginalPath string
	Title        string
	Artist       string
	Year         string
	Album        string
	NewPath      string
}

// Writer appends records to a CSV manifest file.
type Writer struct {
	f  *os.File
	cw *csv.Writer
}

// Create opens path for appending, writing the header row when the file is
// new or empty. Reruns therefore extend the existing manifest without
// duplicating the header.
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}

	w := &Writer{f: f, cw: csv.NewWriter(f)}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat manifest: %w", err)
	}
	if info.Size() == 0 {
		if err := w.cw.Write(Header); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write manifest header: %w", err)
		}
	}

	return w, nil
}

// Append buffers one record. Rows become durable at the next Flush.
func (w *Writer) Append(r Record) error {
	return w.cw.Write([]string{r.OriginalPath, r.Title, r.Artist, r.Year, r.Album, r.NewPath})
}

// Flush forces buffered rows to disk. The driver flushes at every batch
// boundary so a mid-run failure keeps all completed batches.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// Close flushes remaining rows and closes the manifest file.
func (w *Writer) Close() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.f.Close()
}
