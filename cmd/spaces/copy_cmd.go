package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/seed"
	"github.com/garymjr/spaces/internal/space"
)

func newCopyCmd() *cobra.Command {
	var (
		from   string
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "copy [space|id]... [-- <pattern>...]",
		Short:   "Copy files between spaces",
		Aliases: []string{"cp"},
		GroupID: GroupCore,
		Long: `Copy files matching include patterns from one space into others.

Patterns after -- override the configured spaces.copy.include patterns
and the .spacesinclude/.worktreeinclude files. The source defaults to
the main repository ("1"). Configured spaces.copy.exclude patterns
always apply.

A target that does not resolve is reported and skipped; the remaining
targets are still processed.`,
		Example: `  spaces copy feature-x                 # seed configured patterns
  spaces copy feature-x -- .env '*.pem' # explicit patterns
  spaces copy --all --dry-run           # preview seeding every space
  spaces copy feature-y --from feature-x`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			// Arguments after -- are patterns, not targets.
			targets := args
			var patterns []string
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				targets = args[:at]
				patterns = args[at:]
			}

			if len(patterns) == 0 {
				patterns, err = includePatterns(ctx, env)
				if err != nil {
					return err
				}
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no patterns specified: use '-- <pattern>...' or configure %s", config.KeyCopyInclude)
			}

			excludes := env.Resolver.GetAll(ctx, config.KeyCopyExclude, config.ScopeAuto)

			if all {
				names := space.Names(env.ClonesDir, env.Prefix)
				if len(names) == 0 {
					return fmt.Errorf("no spaces found")
				}
				targets = names
			}
			if len(targets) == 0 {
				return fmt.Errorf("no targets: name spaces to copy into, or use --all")
			}

			src, err := space.Resolve(ctx, from, env.Root, env.ClonesDir, env.Prefix)
			if err != nil {
				return err
			}

			copied := false
			for _, identifier := range targets {
				dst, err := space.Resolve(ctx, identifier, env.Root, env.ClonesDir, env.Prefix)
				if err != nil {
					var notFound *space.NotFoundError
					if errors.As(err, &notFound) {
						l.Errorf("%v", err)
						continue
					}
					return err
				}
				if dst.Path == src.Path {
					continue
				}

				if dryRun {
					l.Step("[dry-run] Would copy to: %s", dst.Name)
				} else {
					l.Step("Copying to: %s", dst.Name)
				}
				if _, err := seed.CopyFiles(ctx, src.Path, dst.Path, patterns, excludes, dryRun); err != nil {
					return err
				}
				copied = true
			}

			if !copied {
				l.Warnf("No files copied (source and target may be the same)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", space.MainID, "Source space (defaults to the main repository)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Copy into every space")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be copied without copying")

	return cmd
}
