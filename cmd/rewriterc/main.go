package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/commands"
	"github.com/walteh/rewriterc/pkg/status"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "rewriterc",
		Short: "A tool for rewriting namespaces across source trees",
		Long: `rewriterc applies an ordered list of find/replace rules to every file
under a root directory whose name matches one of the configured suffixes.
Files are only written back when a rule actually changed their content.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(newRootOpts),
		commands.NewCheckCmd(newRootOpts),
		newVersionCmd(),
	)

	ctx := log.Logger.WithContext(context.Background())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		status.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// TODO(dr.methodical): 📝 Add examples in help text
