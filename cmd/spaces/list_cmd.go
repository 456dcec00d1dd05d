package main

import (
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/output"
	"github.com/garymjr/spaces/internal/space"
	"github.com/garymjr/spaces/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var porcelain bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the main repository and all spaces",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the main repository and every space, with the branch each one
has checked out.

--porcelain prints one tab-separated line per space
(path<TAB>name<TAB>branch<TAB>status) for scripting; status is one of
ok, dirty, detached, missing.`,
		Example: `  spaces list
  spaces list --porcelain | cut -f1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			dirs := space.CloneDirs(env.ClonesDir, env.Prefix)

			if porcelain {
				branch := space.CurrentBranch(ctx, env.Root)
				p.Printf("%s\t%s\t%s\t%s\n", env.Root, "main", branch, space.Status(ctx, env.Root))
				for _, dir := range dirs {
					branch := space.CurrentBranch(ctx, dir)
					name := space.Name(dir, env.Prefix)
					p.Printf("%s\t%s\t%s\t%s\n", dir, name, branch, space.Status(ctx, dir))
				}
				return nil
			}

			rows := [][]string{
				{"main", space.CurrentBranch(ctx, env.Root), env.Root},
			}
			for _, dir := range dirs {
				rows = append(rows, []string{
					space.Name(dir, env.Prefix),
					space.CurrentBranch(ctx, dir),
					dir,
				})
			}

			p.Printf("%s", static.RenderTable([]string{"SPACE", "BRANCH", "PATH"}, rows))
			if len(dirs) == 0 {
				p.Println()
				p.Printf("No spaces yet. Create one with 'spaces new <name>' (clones dir: %s)\n", env.ClonesDir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&porcelain, "porcelain", false, "Machine-readable tab-separated output")

	return cmd
}
