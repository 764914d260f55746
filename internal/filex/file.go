// Package filex contains file system helpers for the database file and the
// recipe image assets.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold the file at path.
// In-memory SQLite DSNs and bare file names need nothing.
func EnsureParentDir(path string) error {
	path = strings.TrimPrefix(path, "file:")
	if path == "" || strings.HasPrefix(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ResolveAsset joins name onto dir and reports whether a regular file exists
// there. Names that try to leave dir are rejected.
func ResolveAsset(dir, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}

	path := filepath.Join(dir, clean)
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return path, false
	}
	return path, true
}
