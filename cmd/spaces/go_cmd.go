package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/output"
	"github.com/garymjr/spaces/internal/space"
	"github.com/garymjr/spaces/internal/ui/prompt"
)

func newGoCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "go [space|id]",
		Short:   "Print the path of a space",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Resolve a space and print its path to stdout, for use in shell
navigation. With no argument an interactive picker lists all spaces.

Diagnostics go to stderr, so the printed path is safe to substitute:

  cd $(spaces go feature-x)`,
		Example: `  cd $(spaces go feature-x)
  cd $(spaces go 1)           # main repository
  spaces go                   # pick interactively
  spaces go feature-x --copy  # copy path to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			var identifier string
			if len(args) > 0 {
				identifier = args[0]
			} else {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("space identifier required in non-interactive mode")
				}
				names := space.Names(env.ClonesDir, env.Prefix)
				options := append([]string{"main"}, names...)
				result, err := prompt.Select("Go to space", options)
				if err != nil {
					return err
				}
				if result.Cancelled {
					return nil
				}
				if result.Index == 0 {
					identifier = space.MainID
				} else {
					identifier = result.Value
				}
			}

			target, err := space.Resolve(ctx, identifier, env.Root, env.ClonesDir, env.Prefix)
			if err != nil {
				return err
			}

			if target.IsMain {
				l.Printf("Main repo\n")
			} else {
				l.Printf("Space: %s\n", target.Name)
			}
			l.Printf("Branch: %s\n", target.Branch)

			if copyToClipboard {
				if err := clipboard.WriteAll(target.Path); err != nil {
					l.Warnf("Failed to copy to clipboard: %v", err)
				} else {
					l.Infof("Path copied to clipboard")
				}
			}

			p.Println(target.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the path to the clipboard")

	return cmd
}
