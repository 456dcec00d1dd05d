package git

import (
	"context"
	"fmt"
	"strings"
)

func trim(b []byte) string {
	return strings.TrimSpace(string(b))
}

// RepoRoot returns the top-level directory of the repository containing
// the current working directory.
func RepoRoot(ctx context.Context) (string, error) {
	root, err := Output(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return root, nil
}

// OriginURL returns the origin remote URL for the repository at dir.
func OriginURL(ctx context.Context, dir string) (string, bool) {
	return OutputOpt(ctx, dir, "remote", "get-url", "origin")
}

// CurrentBranch returns the branch checked out at dir.
// Returns "(detached)" when HEAD is detached, and ok=false when the
// branch cannot be determined at all.
func CurrentBranch(ctx context.Context, dir string) (string, bool) {
	branch, ok := OutputOpt(ctx, dir, "branch", "--show-current")
	if !ok {
		branch, ok = OutputOpt(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	}
	if !ok {
		return "", false
	}
	if branch == "HEAD" {
		return "(detached)", true
	}
	return branch, true
}

// IsDirty returns true if the working tree at dir has uncommitted
// changes or untracked files. Errors count as clean.
func IsDirty(ctx context.Context, dir string) bool {
	out, ok := OutputOpt(ctx, dir, "status", "--porcelain")
	return ok && out != ""
}

// RefExists reports whether ref resolves in the repository at dir.
func RefExists(ctx context.Context, dir, ref string) bool {
	return runGit(ctx, dir, "show-ref", "--verify", "--quiet", ref) == nil
}

// OriginHead returns the branch name that refs/remotes/origin/HEAD
// points at, if the symbolic ref is set.
func OriginHead(ctx context.Context, dir string) (string, bool) {
	ref, ok := OutputOpt(ctx, dir, "symbolic-ref", "--quiet", "refs/remotes/origin/HEAD")
	if !ok {
		return "", false
	}
	branch := strings.TrimPrefix(ref, "refs/remotes/origin/")
	if branch == "" || branch == ref {
		return "", false
	}
	return branch, true
}
