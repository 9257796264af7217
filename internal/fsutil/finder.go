// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindByPattern returns the files under rootPath matching the doublestar
// glob pattern, sorted for deterministic load order. If rootPath is a single
// file it is returned as-is, pattern or not.
func FindByPattern(rootPath, pattern string) ([]string, error) {
	if pattern == "" {
		panic("pattern must not be empty")
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(rootPath), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(rootPath, m))
	}
	sort.Strings(files)
	return files, nil
}
