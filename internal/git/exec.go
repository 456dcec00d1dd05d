package git

import (
	"context"

	"github.com/garymjr/spaces/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Run executes a git command in dir, surfacing stderr on failure.
func Run(ctx context.Context, dir string, args ...string) error {
	return runGit(ctx, dir, args...)
}

// Output executes a git command in dir and returns trimmed stdout.
func Output(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	return trim(out), nil
}

// OutputOpt executes a git command in dir and returns trimmed stdout,
// degrading any failure or empty output to ok=false.
func OutputOpt(ctx context.Context, dir string, args ...string) (string, bool) {
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return "", false
	}
	text := trim(out)
	if text == "" {
		return "", false
	}
	return text, true
}
