package main

import (
	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/output"
)

// scopeFlags holds the shared --local/--global/--system selection.
type scopeFlags struct {
	local  bool
	global bool
	system bool
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&f.local, "local", false, "Repository-local scope")
	cmd.PersistentFlags().BoolVar(&f.global, "global", false, "User-global scope")
	cmd.PersistentFlags().BoolVar(&f.system, "system", false, "System scope (read-only)")
	cmd.MarkFlagsMutuallyExclusive("local", "global", "system")
}

func (f *scopeFlags) scope() config.Scope {
	switch {
	case f.local:
		return config.ScopeLocal
	case f.global:
		return config.ScopeGlobal
	case f.system:
		return config.ScopeSystem
	default:
		return config.ScopeAuto
	}
}

func newConfigCmd() *cobra.Command {
	var flags scopeFlags

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write spaces configuration",
		GroupID: GroupConfig,
		Long: `Read and write spaces configuration through git config.

Without a scope flag, reads merge local values, the repository's
.spacesrc file, global values, and system values in that order; writes
go to the local scope. The system scope can be read but never written.`,
		Example: `  spaces config list
  spaces config get spaces.copy.include
  spaces config set spaces.clones.prefix space- --global
  spaces config add spaces.copy.include '*.env'
  spaces config unset spaces.defaultBranch`,
	}

	flags.register(cmd)

	cmd.AddCommand(
		newConfigGetCmd(&flags),
		newConfigSetCmd(&flags),
		newConfigAddCmd(&flags),
		newConfigUnsetCmd(&flags),
		newConfigListCmd(&flags),
		newConfigInitCmd(),
	)

	return cmd
}

func newConfigGetCmd(flags *scopeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print all values for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			for _, value := range env.Resolver.GetAll(ctx, args[0], flags.scope()) {
				p.Println(value)
			}
			return nil
		},
	}
}

func newConfigSetCmd(flags *scopeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Replace all values for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			resolved, err := env.Resolver.Set(ctx, args[0], args[1], flags.scope())
			if err != nil {
				return err
			}
			l.Infof("Config set: %s = %s (%s)", args[0], args[1], resolved)
			return nil
		},
	}
}

func newConfigAddCmd(flags *scopeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <key> <value>",
		Short: "Append a value to a multi-valued key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			resolved, err := env.Resolver.Add(ctx, args[0], args[1], flags.scope())
			if err != nil {
				return err
			}
			l.Infof("Config added: %s = %s (%s)", args[0], args[1], resolved)
			return nil
		},
	}
}

func newConfigUnsetCmd(flags *scopeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove all values for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			resolved, err := env.Resolver.Unset(ctx, args[0], flags.scope())
			if err != nil {
				return err
			}
			l.Infof("Config unset: %s (%s)", args[0], resolved)
			return nil
		},
	}
}

func newConfigListCmd(flags *scopeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all spaces configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			env, err := loadRepoEnv(ctx)
			if err != nil {
				return err
			}

			lines := env.Resolver.List(ctx, flags.scope())
			if len(lines) == 0 {
				p.Println("No spaces configuration found")
				return nil
			}
			for _, line := range lines {
				p.Println(line)
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var (
		force    bool
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the user defaults file",
		Args:  cobra.NoArgs,
		Long: `Write a commented template to the user defaults file
(~/.config/spaces/config.toml). Values there sit below SPACES_*
environment variables in the lookup order and above built-in
defaults.

Refuses to overwrite an existing file unless --force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			if toStdout {
				p.Printf("%s", config.DefaultUserConfig())
				return nil
			}

			path, err := config.InitUserConfig(force)
			if err != nil {
				return err
			}
			l.Infof("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the template instead of writing it")

	return cmd
}
