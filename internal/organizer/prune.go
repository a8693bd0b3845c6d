// internal/organizer/prune.go
package organizer

import (
	"log/slog"
	"os"
	"path/filepath"
)

// PruneEmptyDirs removes directories under root left empty after organizing.
// Children are visited first so whole empty trees collapse; root itself is
// never removed. A directory gaining entries between the scan and the remove
// is logged and skipped.
func PruneEmptyDirs(root string, log *slog.Logger) {
	pruneDir(root, root, log)
}

// pruneDir reports whether dir was removed.
func pruneDir(dir, root string, log *slog.Logger) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("read directory", "path", dir, "error", err)
		return false
	}

	remaining := len(entries)
	for _, e := range entries {
		if e.IsDir() && pruneDir(filepath.Join(dir, e.Name()), root, log) {
			remaining--
		}
	}

	if dir == root || remaining > 0 {
		return false
	}
	if err := os.Remove(dir); err != nil {
		log.Warn("remove empty folder", "path", dir, "error", err)
		return false
	}
	log.Info("deleted empty folder", "path", dir)
	return true
}
