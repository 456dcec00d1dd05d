package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/clone"
	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/hooks"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/mirror"
	"github.com/garymjr/spaces/internal/paths"
	"github.com/garymjr/spaces/internal/seed"
	"github.com/garymjr/spaces/internal/ui/prompt"
)

func newNewCmd() *cobra.Command {
	var (
		branch  string
		from    string
		noFetch bool
		noCopy  bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:     "new [name]",
		Short:   "Create a new space",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a new space: a full clone of the repository that borrows
objects from the local mirror. Configured include patterns and the
.spacesinclude/.worktreeinclude files seed untracked files into the
new clone, and postCreate hooks run inside it afterwards.`,
		Example: `  spaces new feature-x                 # space on the default branch
  spaces new feature-x -b feature-x    # create and check out a branch
  spaces new hotfix -b hotfix --from v1.2.0
  spaces new feature-x --no-copy       # skip file seeding`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			if from != "" && branch == "" {
				return fmt.Errorf("--from requires --branch")
			}

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			var space string
			if len(args) > 0 {
				space = args[0]
			} else {
				if yes || !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("space name required in non-interactive mode")
				}
				result, err := prompt.TextInput("Enter space name:", "feature-x")
				if err != nil {
					return err
				}
				space = strings.TrimSpace(result.Value)
				if result.Cancelled || space == "" {
					return fmt.Errorf("space name required")
				}
			}

			folder := paths.SanitizeName(space)
			clonePath := filepath.Join(env.ClonesDir, env.Prefix+folder)

			l.Step("Creating space: %s", space)
			l.Printf("Location: %s\n", clonePath)
			l.Printf("Space: %s\n", space)
			if branch != "" {
				l.Printf("Branch: %s\n", branch)
			}

			if err := mirror.Ensure(ctx, env.Root, env.MirrorDir); err != nil {
				return err
			}
			if !noFetch {
				mirror.Update(ctx, env.Root, env.MirrorDir)
			}

			baseRef := from
			if baseRef == "" {
				baseRef = paths.DefaultBranch(ctx, env.Resolver, env.Root)
			}

			err = clone.Create(ctx, env.Root, env.MirrorDir, clone.Plan{
				Path:    clonePath,
				Branch:  branch,
				BaseRef: baseRef,
			})
			if err != nil {
				return err
			}

			if !noCopy {
				if err := seedClone(ctx, env, clonePath); err != nil {
					return err
				}
			}

			cloneBranch, _ := git.CurrentBranch(ctx, clonePath)
			hookCommands := env.Resolver.GetAll(ctx, config.HookKey(hooks.PhasePostCreate), config.ScopeAuto)
			if err := hooks.RunAll(ctx, hooks.PhasePostCreate, clonePath,
				hookEnv(env.Root, clonePath, space, cloneBranch), hookCommands); err != nil {
				return err
			}

			l.Infof("Space created: %s", clonePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to check out in the new space")
	cmd.Flags().StringVar(&from, "from", "", "Base ref for a new branch (requires --branch)")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "Skip updating the mirror before cloning")
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Skip seeding files into the new space")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Never prompt; fail instead")

	return cmd
}

// seedClone copies the configured files and directories from the main
// repository into a fresh clone.
func seedClone(ctx context.Context, env *repoEnv, clonePath string) error {
	l := log.FromContext(ctx)

	includes, err := includePatterns(ctx, env)
	if err != nil {
		return err
	}
	excludes := env.Resolver.GetAll(ctx, config.KeyCopyExclude, config.ScopeAuto)

	if len(includes) > 0 {
		l.Step("Copying files...")
		if _, err := seed.CopyFiles(ctx, env.Root, clonePath, includes, excludes, false); err != nil {
			return err
		}
	}

	dirIncludes := env.Resolver.GetAll(ctx, config.KeyCopyIncludeDirs, config.ScopeAuto)
	dirExcludes := env.Resolver.GetAll(ctx, config.KeyCopyExcludeDirs, config.ScopeAuto)
	if len(dirIncludes) > 0 {
		l.Step("Copying directories...")
		if _, err := seed.CopyDirectories(ctx, env.Root, clonePath, dirIncludes, dirExcludes); err != nil {
			return err
		}
	}

	return nil
}
