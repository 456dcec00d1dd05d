package space

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CloneDirs returns the clone directories under clonesDir carrying the
// configured prefix, sorted by path. A missing clones directory yields
// an empty list.
func CloneDirs(clonesDir, prefix string) []string {
	entries, err := os.ReadDir(clonesDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		out = append(out, filepath.Join(clonesDir, entry.Name()))
	}
	sort.Strings(out)
	return out
}

// Names returns the space names for every clone under clonesDir.
func Names(clonesDir, prefix string) []string {
	dirs := CloneDirs(clonesDir, prefix)
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, Name(dir, prefix))
	}
	return names
}
