package main

import (
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/cmd"
	"github.com/garymjr/spaces/internal/gh"
	"github.com/garymjr/spaces/internal/mirror"
	"github.com/garymjr/spaces/internal/output"
	"github.com/garymjr/spaces/internal/paths"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Check the environment and effective configuration",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Report the tool versions and resolved paths spaces will use in this
repository. Useful to verify configuration before creating spaces.`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			p := output.FromContext(ctx)

			p.Println("Running spaces health check...")
			p.Println()

			if out, err := cmd.OutputContext(ctx, "", "git", "--version"); err == nil {
				p.Printf("[OK] Git: %s\n", trimOutput(out))
			} else {
				p.Println("[x] Git: not found")
			}

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			p.Printf("[OK] Clones dir: %s\n", env.ClonesDir)
			p.Printf("[OK] Mirrors dir: %s\n", env.MirrorDir)
			p.Printf("[OK] Mirror present: %s\n", yesNo(mirror.Exists(env.MirrorDir)))
			p.Printf("[OK] Default branch: %s\n", paths.DefaultBranch(ctx, env.Resolver, env.Root))
			p.Printf("[OK] GitHub CLI: %s\n", yesNo(gh.Available(ctx, env.Root)))

			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
