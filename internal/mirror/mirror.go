// Package mirror manages the local bare mirror that accelerates space
// creation. The mirror lives outside the repository and its clones and
// is safe to delete at any time; it is recreated on the next space.
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/log"
)

// Ensure creates the mirror as a bare mirror clone of the repository
// at repoRoot if it does not exist yet. An existing mirror is left
// untouched.
func Ensure(ctx context.Context, repoRoot, mirrorDir string) error {
	if _, err := os.Stat(mirrorDir); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(mirrorDir), 0755); err != nil {
		return fmt.Errorf("create mirror parent: %w", err)
	}

	log.FromContext(ctx).Step("Creating mirror: %s", mirrorDir)
	return git.Run(ctx, "", "clone", "--mirror", repoRoot, mirrorDir)
}

// Update refreshes the mirror from the remote and from the local
// repository. Every fetch is best-effort: a mirror that cannot reach
// the remote still serves whatever refs it already has.
func Update(ctx context.Context, repoRoot, mirrorDir string) {
	if url, ok := git.OriginURL(ctx, repoRoot); ok {
		_ = git.Run(ctx, mirrorDir, "remote", "set-url", "origin", url)
		_ = git.Run(ctx, mirrorDir, "fetch", "--prune", "origin")
	}

	// Local branches and tags may be ahead of the remote; pick them up
	// directly from the working repository.
	_ = git.Run(ctx, mirrorDir, "fetch", repoRoot,
		"+refs/heads/*:refs/heads/*",
		"+refs/tags/*:refs/tags/*")
}

// Exists reports whether the mirror directory is present.
func Exists(mirrorDir string) bool {
	_, err := os.Stat(mirrorDir)
	return err == nil
}
