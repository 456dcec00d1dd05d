package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/hooks"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/space"
)

func newRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <space|id>...",
		Short:   "Remove one or more spaces",
		GroupID: GroupCore,
		Args:    cobra.MinimumNArgs(1),
		Long: `Remove spaces from the clones directory.

preRemove hooks run inside each space before deletion and abort it on
failure unless --force is set. postRemove hooks run afterwards and are
best-effort. The main repository ("1") can never be removed, and only
directories inside the clones directory that carry a .git marker are
deleted.

A target that does not resolve is reported and skipped; the remaining
targets are still processed.`,
		Example: `  spaces rm feature-x
  spaces rm feature-x hotfix-y
  spaces rm feature-x --force   # ignore failing preRemove hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			for _, identifier := range args {
				target, err := space.Resolve(ctx, identifier, env.Root, env.ClonesDir, env.Prefix)
				if err != nil {
					var notFound *space.NotFoundError
					if errors.As(err, &notFound) {
						l.Errorf("%v", err)
						continue
					}
					return err
				}
				if target.IsMain {
					l.Errorf("Cannot remove main repository")
					continue
				}

				l.Step("Removing space: %s", target.Path)

				hookVars := hookEnv(env.Root, target.Path, target.Name, target.Branch)

				preRemove := env.Resolver.GetAll(ctx, config.HookKey(hooks.PhasePreRemove), config.ScopeAuto)
				if err := hooks.RunAll(ctx, hooks.PhasePreRemove, target.Path, hookVars, preRemove); err != nil {
					if !force {
						l.Errorf("Pre-remove hook failed: %v", err)
						continue
					}
					l.Warnf("Pre-remove hook failed; continuing due to --force")
				}

				if err := space.SafeRemove(target.Path, env.ClonesDir); err != nil {
					// Fatal for this space only; keep processing the rest.
					l.Errorf("%v", err)
					continue
				}
				l.Infof("Removed space: %s", target.Path)

				postRemove := env.Resolver.GetAll(ctx, config.HookKey(hooks.PhasePostRemove), config.ScopeAuto)
				if err := hooks.RunAll(ctx, hooks.PhasePostRemove, env.Root, hookVars, postRemove); err != nil {
					l.Warnf("Post-remove hook failed: %v", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even if preRemove hooks fail")

	return cmd
}
