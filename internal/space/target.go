package space

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/paths"
)

// MainID is the identifier that always resolves to the main repository.
const MainID = "1"

// Target is a resolved space: either the main repository or one clone
// under the clones directory.
type Target struct {
	IsMain bool
	Path   string
	Name   string
	Branch string
}

// NotFoundError reports an identifier that resolved to no space.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("target not found for space: %s", e.Identifier)
}

// CurrentBranch returns the branch checked out at path, "(detached)"
// for a detached HEAD, or "unknown" when git cannot answer at all.
func CurrentBranch(ctx context.Context, path string) string {
	branch, ok := git.CurrentBranch(ctx, path)
	if !ok {
		return "unknown"
	}
	return branch
}

// Resolve maps an identifier to a Target.
//
// "1" resolves to the main repository unconditionally. Anything else is
// sanitized the same way 'spaces new' sanitizes names, prefixed, and
// looked up under the clones directory. The returned Name keeps the
// identifier as the user typed it; only the on-disk path is sanitized.
func Resolve(ctx context.Context, identifier, repoRoot, clonesDir, prefix string) (*Target, error) {
	if identifier == MainID {
		return &Target{
			IsMain: true,
			Path:   repoRoot,
			Name:   "main",
			Branch: CurrentBranch(ctx, repoRoot),
		}, nil
	}

	sanitized := paths.SanitizeName(identifier)
	dir := filepath.Join(clonesDir, prefix+sanitized)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Identifier: identifier}
	}

	return &Target{
		IsMain: false,
		Path:   dir,
		Name:   identifier,
		Branch: CurrentBranch(ctx, dir),
	}, nil
}

// Status classifies the working tree at path as missing, detached,
// dirty, or ok.
func Status(ctx context.Context, path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	if CurrentBranch(ctx, path) == "(detached)" {
		return "detached"
	}
	if git.IsDirty(ctx, path) {
		return "dirty"
	}
	return "ok"
}

// Name recovers the space name from a clone directory path by
// stripping the configured prefix from its basename.
func Name(path, prefix string) string {
	base := filepath.Base(path)
	return strings.TrimPrefix(base, prefix)
}
