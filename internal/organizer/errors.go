// internal/organizer/errors.go
package organizer

import "errors"

var (
	// ErrNotDirectory indicates the scan folder is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrMoveFailed indicates the file move operation failed.
	ErrMoveFailed = errors.New("failed to move file")
)
