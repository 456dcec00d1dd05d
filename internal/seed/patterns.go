package seed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/garymjr/spaces/internal/log"
)

// Unsafe reports whether a pattern could escape the root it is
// expanded against: absolute paths and every form of .. traversal.
// Unsafe patterns are never matched.
func Unsafe(pattern string) bool {
	return filepath.IsAbs(pattern) ||
		strings.HasPrefix(pattern, "/") ||
		pattern == ".." ||
		strings.HasPrefix(pattern, "../") ||
		strings.Contains(pattern, "/../") ||
		strings.HasSuffix(pattern, "/..")
}

// ParsePatternFile reads a one-pattern-per-line file. Blank lines and
// lines starting with # are ignored. A missing file is an empty list,
// not an error.
func ParsePatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read pattern file %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pattern file %s: %w", path, err)
	}
	return out, nil
}

// compileExclude translates an exclude glob into an anchored regexp.
// Excludes match whole relative paths and their wildcards also cross
// the path separator, so "*.pem" suppresses "certs/a.pem" too.
// An unterminated character class is a bad pattern.
func compileExclude(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				// A ] right after [ or [! is a literal member.
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j == len(runes) {
				return nil, filepath.ErrBadPattern
			}
			class := string(runes[i+1 : j])
			if rest, negated := strings.CutPrefix(class, "!"); negated {
				class = "^" + rest
			}
			b.WriteString("[" + class + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// safeExcludes compiles exclude patterns, dropping unsafe or malformed
// ones with a warning. An exclude that cannot match safely must not
// silently mark anything as excluded.
func safeExcludes(ctx context.Context, excludes []string) []*regexp.Regexp {
	l := log.FromContext(ctx)
	out := make([]*regexp.Regexp, 0, len(excludes))
	for _, pattern := range excludes {
		if Unsafe(pattern) {
			l.Warnf("Skipping unsafe exclude pattern: %s", pattern)
			continue
		}
		re, err := compileExclude(pattern)
		if err != nil {
			l.Warnf("Skipping malformed exclude pattern: %s", pattern)
			continue
		}
		out = append(out, re)
	}
	return out
}

// excluded reports whether the relative path matches any exclude
// pattern. Patterns are matched against the slash-separated form.
func excluded(rel string, excludes []*regexp.Regexp) bool {
	rel = filepath.ToSlash(rel)
	for _, re := range excludes {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}

// Dedupe returns items with duplicates removed, keeping first-seen order.
func Dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
