package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/garymjr/spaces/internal/config"
	"github.com/garymjr/spaces/internal/git"
	"github.com/garymjr/spaces/internal/log"
	"github.com/garymjr/spaces/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// User-level defaults loaded once at startup; nil when no file exists.
	userCfg *config.UserConfig
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Disposable git working copies backed by a local mirror",
	Long: `spaces manages lightweight, disposable working copies of a git
repository. Each space is a full clone that borrows objects from a
local mirror, so creating one is fast and does not re-download the
repository. Configured files and directories are seeded into new
spaces, and lifecycle hooks run around creation and removal.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed by now, so the logger sees their final values.
		attachLogger(cmd)

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load user defaults; a missing file is fine, a broken one is a warning.
	if path, err := config.UserConfigPath(); err == nil {
		loaded, err := config.LoadUserConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			userCfg = loaded
		}
	}

	// Create context with signal handling. The logger is attached later,
	// in PersistentPreRunE, once the global flags have been parsed.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Printer on stdout for data
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		// Errors print even in quiet mode.
		log.New(os.Stderr, verbose, quiet).Errorf("%v", err)
		os.Exit(1)
	}
}

// attachLogger builds the diagnostic logger from the parsed global
// flags and stores it in the invoked command's context.
func attachLogger(cmd *cobra.Command) {
	cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newGoCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCopyCmd())

	// Utility commands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newMirrorsCmd())
	rootCmd.AddCommand(newDoctorCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
