package space

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SafeRemove deletes a space clone after verifying that path is a
// strict descendant of clonesDir and contains a .git marker. Both
// checks are hard requirements: no force flag bypasses them.
func SafeRemove(path, clonesDir string) error {
	inside, err := isStrictDescendant(path, clonesDir)
	if err != nil {
		return err
	}
	if !inside {
		return fmt.Errorf("refusing to remove path outside clones dir: %s", path)
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return fmt.Errorf("refusing to remove non-git directory: %s", path)
	}
	return os.RemoveAll(path)
}

// isStrictDescendant reports whether path lives below root. The root
// itself does not count.
func isStrictDescendant(path, root string) (bool, error) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false, err
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	return true, nil
}

// RemoveIfEmpty deletes path when it is an empty directory.
// Returns true if the directory was removed.
func RemoveIfEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(path) == nil
}
