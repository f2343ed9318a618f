package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// IndexExtension marks compiled fortune index files, which are skipped.
const IndexExtension = ".dat"

// NotFoundError reports a source path that does not exist.
type NotFoundError struct {
	Path string // Input path exactly as supplied
	Err  error  // Underlying stat error
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying stat error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ResolvePaths expands files and directories into a sorted, de-duplicated list
// of candidate fortune files. It stops at the first input that cannot be found.
func ResolvePaths(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &NotFoundError{Path: path, Err: err}
		}

		if !info.IsDir() {
			// Devices and pipes are not fortune files; opening a pipe would block
			if info.Mode().IsRegular() && isCandidate(path) {
				files = append(files, path)
			}
			continue
		}

		found, err := walkCandidates(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	// Sort before compacting so duplicates from different roots are adjacent
	slices.Sort(files)
	return slices.Compact(files), nil
}

// walkCandidates collects every candidate regular file beneath root.
// Symlinks inside the tree are not followed, but root itself may be one.
func walkCandidates(root string) ([]string, error) {
	var files []string

	// WalkDir does not descend into a symlinked root unless it ends in a
	// separator; results keep the root's own prefix either way
	start := root
	if !strings.HasSuffix(start, string(filepath.Separator)) {
		start += string(filepath.Separator)
	}

	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isCandidate(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isCandidate reports whether path is not a compiled index file.
// The extension comparison is case-sensitive.
func isCandidate(path string) bool {
	return filepath.Ext(path) != IndexExtension
}
