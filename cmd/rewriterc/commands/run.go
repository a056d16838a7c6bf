package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(optsFn opts.Provider) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite matching files under the configured root",
		Long: `Run applies the configured rules to every matching file.
It will:
1. Discover files under the root that match the suffixes
2. Apply each rule in order to the file content
3. Write files back only when their content changed
4. Print a summary of the run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			ro, err := optsFn(ctx)
			if err != nil {
				return err
			}
			if dryRun {
				ro.Config.DryRun = true
			}

			op, err := operation.NewRewriteOperation(operation.Options{
				Config:     ro.Config,
				Rules:      ro.Rules,
				StatusMgr:  ro.StatusMgr,
				UserLogger: ro.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			logger := zerolog.Ctx(ctx)
			if err := operation.NewRunner(logger, ro.Config.Async).Run(ctx, op); err != nil {
				return errors.Errorf("rewriting files: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")

	return cmd
}
