// Package paths derives the canonical on-disk locations spaces works
// with: the clones directory, the mirror directory, the clone name
// prefix, and the default branch.
package paths

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/git"
)

// Environment variables consumed as fallback defaults.
const (
	EnvClonesDir     = "SPACES_CLONES_DIR"
	EnvClonesPrefix  = "SPACES_CLONES_PREFIX"
	EnvMirrorsDir    = "SPACES_MIRRORS_DIR"
	EnvDefaultBranch = "SPACES_DEFAULT_BRANCH"
)

// SanitizeName maps a space name to its on-disk folder form: filesystem
// and shell hostile characters become '-', then leading and trailing
// '-' runs are trimmed. Sanitizing an already sanitized name is a
// no-op, so names round-trip between creation and resolution.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, ch := range name {
		switch ch {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|', '#':
			b.WriteRune('-')
		default:
			b.WriteRune(ch)
		}
	}
	return strings.Trim(b.String(), "-")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if after, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, after)
		}
	}
	return path
}

// resolveDir expands ~ and anchors relative paths at the repo root.
func resolveDir(configured, repoRoot string) string {
	dir := ExpandHome(configured)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoRoot, dir)
	}
	return dir
}

// ClonesDir returns the directory where space clones live for the
// repository at repoRoot. Defaults to a sibling "<repo>-clones"
// directory next to the repository.
func ClonesDir(ctx context.Context, res *config.Resolver, repoRoot string) string {
	configured := res.GetDefault(ctx, config.KeyClonesDir, EnvClonesDir, "", "")
	if configured != "" {
		return resolveDir(configured, repoRoot)
	}
	repoName := filepath.Base(repoRoot)
	return filepath.Join(filepath.Dir(repoRoot), fmt.Sprintf("%s-clones", repoName))
}

// ClonesPrefix returns the folder-name prefix for space clones.
func ClonesPrefix(ctx context.Context, res *config.Resolver, repoRoot string) string {
	return res.GetDefault(ctx, config.KeyClonesPrefix, EnvClonesPrefix, "", "")
}

// MirrorDir returns where the repository's mirror is cached. Defaults
// to ~/.cache/spaces/mirrors/<repo>.
func MirrorDir(ctx context.Context, res *config.Resolver, repoRoot string) string {
	configured := res.GetDefault(ctx, config.KeyMirrorsDir, EnvMirrorsDir, "", "")
	if configured != "" {
		return resolveDir(configured, repoRoot)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return filepath.Join(home, ".cache", "spaces", "mirrors", filepath.Base(repoRoot))
}

// DefaultBranch returns the base branch for new spaces. A configured
// value other than "auto" wins; otherwise the branch is derived from
// origin/HEAD, then origin/main, then origin/master, defaulting to
// "main".
func DefaultBranch(ctx context.Context, res *config.Resolver, repoRoot string) string {
	configured := res.GetDefault(ctx, config.KeyDefaultBranch, EnvDefaultBranch, "auto", "")
	if configured != "auto" {
		return configured
	}

	if branch, ok := git.OriginHead(ctx, repoRoot); ok {
		return branch
	}
	if git.RefExists(ctx, repoRoot, "refs/remotes/origin/main") {
		return "main"
	}
	if git.RefExists(ctx, repoRoot, "refs/remotes/origin/master") {
		return "master"
	}
	return "main"
}
