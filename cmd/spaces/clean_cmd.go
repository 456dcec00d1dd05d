package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/gh"
	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/space"
	"github.com/garymjr/spaces/internal/ui/prompt"
)

func newCleanCmd() *cobra.Command {
	var (
		merged bool
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   "Clean up stale spaces",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Remove empty directories from the clones directory. With --merged,
also find spaces whose branch has a merged pull request (via the gh
CLI) and offer to remove them. Dirty and detached spaces are never
touched.`,
		Example: `  spaces clean
  spaces clean --merged --dry-run
  spaces clean --merged --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			l.Step("Cleaning up stale spaces...")
			if entries, err := os.ReadDir(env.ClonesDir); err == nil {
				for _, entry := range entries {
					if entry.IsDir() {
						space.RemoveIfEmpty(filepath.Join(env.ClonesDir, entry.Name()))
					}
				}
			}

			if !merged {
				return nil
			}

			l.Step("Checking for spaces with merged PRs...")
			if !gh.Available(ctx, env.Root) {
				return fmt.Errorf("GitHub CLI (gh) not found or not authenticated")
			}

			mainBranch, _ := git.CurrentBranch(ctx, env.Root)

			removed := 0
			skipped := 0
			for _, dir := range space.CloneDirs(env.ClonesDir, env.Prefix) {
				branch := space.CurrentBranch(ctx, dir)
				name := space.Name(dir, env.Prefix)

				if branch == "(detached)" || branch == "unknown" {
					skipped++
					continue
				}
				if branch == mainBranch {
					continue
				}
				if git.IsDirty(ctx, dir) {
					skipped++
					continue
				}
				if !gh.Merged(ctx, dir, branch) {
					continue
				}

				switch {
				case dryRun:
					l.Infof("[dry-run] Would remove: %s (%s)", name, dir)
					removed++
				case yes || confirmRemove(name):
					if err := space.SafeRemove(dir, env.ClonesDir); err != nil {
						return err
					}
					l.Infof("Removed space: %s", dir)
					removed++
				default:
					skipped++
				}
			}

			if dryRun {
				l.Infof("Dry run complete. Would remove: %d, Skipped: %d", removed, skipped)
			} else {
				l.Infof("Merged cleanup complete. Removed: %d, Skipped: %d", removed, skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&merged, "merged", false, "Also remove spaces whose PR is merged")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be removed without removing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Remove without confirmation")

	return cmd
}

// confirmRemove asks before deleting a space. Without a terminal the
// answer is always no; use --yes for scripted runs.
func confirmRemove(name string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false
	}
	result, err := prompt.Confirm(fmt.Sprintf("Remove space '%s'?", name))
	if err != nil {
		return false
	}
	return result.Confirmed && !result.Cancelled
}
