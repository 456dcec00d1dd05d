package main

import (
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/mirror"
	"github.com/garymjr/spaces/internal/output"
)

func newMirrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mirrors",
		Short:   "Show or update the repository mirror",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Show the mirror location for this repository and whether it exists.
The mirror is a bare copy used to speed up space creation; deleting it
is always safe, the next 'spaces new' recreates it.`,
		Example: `  spaces mirrors
  spaces mirrors update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			p.Println(env.MirrorDir)
			if mirror.Exists(env.MirrorDir) {
				p.Println("status: present")
			} else {
				p.Println("status: missing")
			}
			return nil
		},
	}

	cmd.AddCommand(newMirrorsUpdateCmd())

	return cmd
}

func newMirrorsUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Create the mirror if needed and fetch the latest refs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			if err := mirror.Ensure(ctx, env.Root, env.MirrorDir); err != nil {
				return err
			}
			mirror.Update(ctx, env.Root, env.MirrorDir)

			p.Printf("updated: %s\n", env.MirrorDir)
			return nil
		},
	}
}
