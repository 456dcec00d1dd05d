package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/paths"
	"github.com/garymjr/spaces/internal/seed"
)

// repoEnv bundles the repository locations and the config resolver
// every command starts from.
type repoEnv struct {
	Root      string
	Resolver  *config.Resolver
	ClonesDir string
	Prefix    string
	MirrorDir string
}

// loadRepoEnv locates the enclosing repository and derives the
// configured paths for it.
func loadRepoEnv(ctx context.Context) (*repoEnv, error) {
	root, err := git.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	res := config.NewResolver(config.NewGitStore(root), userCfg)
	return &repoEnv{
		Root:      root,
		Resolver:  res,
		ClonesDir: paths.ClonesDir(ctx, res, root),
		Prefix:    paths.ClonesPrefix(ctx, res, root),
		MirrorDir: paths.MirrorDir(ctx, res, root),
	}, nil
}

// includePatterns merges the configured include patterns with the
// repo-root pattern files. .worktreeinclude is honored alongside
// .spacesinclude so existing worktree setups keep working.
func includePatterns(ctx context.Context, env *repoEnv) ([]string, error) {
	includes := env.Resolver.GetAll(ctx, config.KeyCopyInclude, config.ScopeAuto)

	for _, file := range []string{".worktreeinclude", ".spacesinclude"} {
		patterns, err := seed.ParsePatternFile(filepath.Join(env.Root, file))
		if err != nil {
			return nil, err
		}
		includes = append(includes, patterns...)
	}

	return seed.Dedupe(includes), nil
}

// trimOutput turns raw command output into a single trimmed line.
func trimOutput(out []byte) string {
	return strings.TrimSpace(string(out))
}

// hookEnv builds the environment exported to lifecycle hooks.
func hookEnv(repoRoot, clonePath, space, branch string) map[string]string {
	env := map[string]string{
		"REPO_ROOT":  repoRoot,
		"CLONE_PATH": clonePath,
		"SPACE":      space,
	}
	if branch != "" {
		env["BRANCH"] = branch
	}
	return env
}
