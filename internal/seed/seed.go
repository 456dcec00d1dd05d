package seed

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/garymjr/spaces/internal/log"
)

// CopyFiles expands each include pattern as a glob rooted at srcRoot
// and copies every matching regular file to the same relative path
// under dstRoot. Excluded and already-copied relative paths are
// skipped; the first include to match a path wins. In dry-run mode no
// filesystem mutation happens, but candidate selection is identical,
// so the returned count matches a real run over the same tree.
func CopyFiles(ctx context.Context, srcRoot, dstRoot string, includes, excludes []string, dryRun bool) (int, error) {
	if len(includes) == 0 {
		return 0, nil
	}

	l := log.FromContext(ctx)
	skip := safeExcludes(ctx, excludes)

	copied := 0
	seen := make(map[string]bool)

	for _, pattern := range includes {
		if Unsafe(pattern) {
			l.Warnf("Skipping unsafe pattern: %s", pattern)
			continue
		}

		normalized := strings.TrimPrefix(pattern, "./")
		matches, err := filepath.Glob(filepath.Join(srcRoot, normalized))
		if err != nil {
			return copied, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			rel, err := filepath.Rel(srcRoot, path)
			if err != nil {
				continue
			}
			if excluded(rel, skip) {
				continue
			}
			if seen[rel] {
				continue
			}
			seen[rel] = true

			if dryRun {
				l.Infof("[dry-run] Would copy: %s", rel)
			} else {
				if err := copyFile(path, filepath.Join(dstRoot, rel)); err != nil {
					return copied, err
				}
				l.Infof("Copied %s", rel)
			}
			copied++
		}
	}

	if copied > 0 {
		if dryRun {
			l.Infof("[dry-run] Would copy %d file(s)", copied)
		} else {
			l.Infof("Copied %d file(s)", copied)
		}
	}
	return copied, nil
}

// CopyDirectories walks srcRoot and recursively copies every directory
// whose basename matches an include pattern, unless its relative path
// matches an exclude. Regular files and subdirectories are preserved;
// symbolic links are recreated best-effort.
func CopyDirectories(ctx context.Context, srcRoot, dstRoot string, includes, excludes []string) (int, error) {
	if len(includes) == 0 {
		return 0, nil
	}

	l := log.FromContext(ctx)
	skip := safeExcludes(ctx, excludes)

	copied := 0

	for _, pattern := range includes {
		if Unsafe(pattern) {
			l.Warnf("Skipping unsafe pattern: %s", pattern)
			continue
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			l.Warnf("Skipping malformed pattern: %s", pattern)
			continue
		}

		err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil || path == srcRoot || !d.IsDir() {
				return nil
			}
			if matched, _ := filepath.Match(pattern, d.Name()); !matched {
				return nil
			}

			rel, relErr := filepath.Rel(srcRoot, path)
			if relErr != nil {
				return nil
			}
			if excluded(rel, skip) {
				return nil
			}

			if err := copyTree(path, filepath.Join(dstRoot, rel), skip); err != nil {
				return err
			}
			l.Infof("Copied directory %s", rel)
			copied++
			return nil
		})
		if err != nil {
			return copied, err
		}
	}

	if copied > 0 {
		l.Infof("Copied %d directories", copied)
	}
	return copied, nil
}

// copyTree recursively copies src to dst. The root marker (empty
// relative path) is skipped: only contained entries are copied.
// Symlink creation failures are ignored.
func copyTree(src, dst string, excludes []*regexp.Regexp) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if excluded(rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0755)
		case d.Type()&fs.ModeSymlink != 0:
			link, readErr := os.Readlink(path)
			if readErr != nil {
				return nil
			}
			if mkErr := os.MkdirAll(filepath.Dir(target), 0755); mkErr != nil {
				return nil
			}
			// Best-effort: an unsupported or conflicting link must not
			// abort the copy.
			_ = os.Symlink(link, target)
			return nil
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil
		}
	})
}

// copyFile copies src to dst, creating parent directories as needed
// and preserving the source file's permission bits. An existing
// destination is overwritten so repeated syncs converge.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst) // clean up partial dst
		return err
	}
	return nil
}
