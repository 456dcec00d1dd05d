package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/space"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <space|id> -- <command>...",
		Short:   "Run a command inside a space",
		GroupID: GroupUtility,
		Args:    cobra.MinimumNArgs(2),
		Long: `Run a command with the space's directory as working directory. The
command's stdout and stderr pass through untouched, and its exit
status decides the exit status of spaces itself.`,
		Example: `  spaces run feature-x -- git status
  spaces run 1 -- make test`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			target, err := space.Resolve(ctx, args[0], env.Root, env.ClonesDir, env.Prefix)
			if err != nil {
				return err
			}
			command := args[1:]

			l.Step("Running in: %s", target.Name)
			l.Printf("Command: %s\n\n", strings.Join(command, " "))

			child := exec.CommandContext(ctx, command[0], command[1:]...)
			child.Dir = target.Path
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr

			if err := child.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					os.Exit(exitErr.ExitCode())
				}
				return fmt.Errorf("command failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
