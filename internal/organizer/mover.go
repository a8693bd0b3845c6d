// internal/organizer/mover.go
package organizer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// MoveFile relocates src to dst, creating missing directories. When dst is
// already occupied, a " (n)" suffix is appended before the extension until a
// free name is found, so no existing file is ever overwritten. Returns the
// path actually written and whether a move happened: moving a file onto
// itself is a no-op, which makes a second run over an organized tree safe.
func MoveFile(src, dst string) (string, bool, error) {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)
	if src == dst {
		return dst, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", false, fmt.Errorf("%w: create directory: %v", ErrMoveFailed, err)
	}

	final, err := resolveCollision(dst)
	if err != nil {
		return "", false, err
	}

	if err := renameFile(src, final); err != nil {
		return "", false, err
	}
	return final, true, nil
}

// resolveCollision returns dst when free, otherwise the first
// "name (n).ext" in the same directory that is.
func resolveCollision(dst string) (string, error) {
	free, err := pathFree(dst)
	if err != nil {
		return "", err
	}
	if free {
		return dst, nil
	}

	ext := filepath.Ext(dst)
	stem := strings.TrimSuffix(dst, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		free, err := pathFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func pathFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat destination: %v", ErrMoveFailed, err)
	}
	return false, nil
}

// renameFile moves src to dst, falling back to copy+remove when the rename
// crosses filesystems.
func renameFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("%w: remove source after copy: %v", ErrMoveFailed, err)
	}
	return nil
}

// copyFile copies src to dst. dst must not exist.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrMoveFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: create destination: %v", ErrMoveFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		// Clean up partial file on error
		_ = os.Remove(dst)
		return fmt.Errorf("%w: copy content: %v", ErrMoveFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("%w: sync: %v", ErrMoveFailed, err)
	}

	return nil
}
