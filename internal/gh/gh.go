// Package gh wraps the GitHub CLI for pull request state lookups.
// Everything here is best-effort: spaces works without gh installed,
// it just cannot detect merged pull requests.
package gh

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/garymjr/spaces/internal/cmd"
)

// Available reports whether the gh CLI is installed and can see the
// repository at dir.
func Available(ctx context.Context, dir string) bool {
	if _, err := exec.LookPath("gh"); err != nil {
		return false
	}
	return cmd.RunContext(ctx, dir, "gh", "repo", "view") == nil
}

// Merged reports whether a merged pull request exists with branch as
// its head. Lookup failures count as not merged.
func Merged(ctx context.Context, dir, branch string) bool {
	out, err := cmd.OutputContext(ctx, dir, "gh",
		"pr", "list",
		"--head", branch,
		"--state", "merged",
		"--json", "state",
		"--jq", ".[0].state")
	if err != nil {
		return false
	}
	return string(bytes.TrimSpace(out)) == "MERGED"
}
