// Package clone creates full working copies for spaces, borrowing
// objects from the local mirror when possible.
package clone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/log"
)

// Plan describes a clone to create: where it lives, the branch to
// check out (empty means whatever the default checkout gives), and the
// ref a brand-new branch starts from.
type Plan struct {
	Path    string
	Branch  string
	BaseRef string
}

// Create clones the repository at repoRoot into plan.Path. The origin
// URL is preferred as the clone source so the new copy tracks the real
// remote; the mirror is attached as an object reference so cloning
// stays local-fast. Refuses to overwrite an existing path.
func Create(ctx context.Context, repoRoot, mirrorDir string, plan Plan) error {
	if _, err := os.Stat(plan.Path); err == nil {
		return fmt.Errorf("clone already exists: %s", plan.Path)
	}

	if err := os.MkdirAll(filepath.Dir(plan.Path), 0755); err != nil {
		return fmt.Errorf("create clones dir: %w", err)
	}

	source, ok := git.OriginURL(ctx, repoRoot)
	if !ok {
		source = repoRoot
	}

	log.FromContext(ctx).Step("Cloning repository...")
	if err := git.Run(ctx, "", "clone", "--reference-if-able", mirrorDir, source, plan.Path); err != nil {
		return err
	}

	if plan.Branch != "" {
		return checkoutBranch(ctx, mirrorDir, plan)
	}
	return nil
}

// checkoutBranch puts the clone on plan.Branch. The mirror's refs
// decide the strategy: a remote-tracking branch becomes a tracking
// checkout, a mirror-only local branch is checked out directly, and an
// unknown branch is created fresh from plan.BaseRef.
func checkoutBranch(ctx context.Context, mirrorDir string, plan Plan) error {
	branch := plan.Branch

	if git.RefExists(ctx, mirrorDir, "refs/remotes/origin/"+branch) {
		return git.Run(ctx, plan.Path, "checkout", "-b", branch, "origin/"+branch)
	}

	if git.RefExists(ctx, mirrorDir, "refs/heads/"+branch) {
		return git.Run(ctx, plan.Path, "checkout", branch)
	}

	return git.Run(ctx, plan.Path, "checkout", "-b", branch, plan.BaseRef)
}
