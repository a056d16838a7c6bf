package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(optsFn opts.Provider) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which files the rules would change, without writing",
		Long: `Check discovers matching files and applies the rules in memory.
Files that would change are listed as pending; nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			ro, err := optsFn(ctx)
			if err != nil {
				return err
			}

			op, err := operation.NewCheckOperation(operation.Options{
				Config:     ro.Config,
				Rules:      ro.Rules,
				StatusMgr:  ro.StatusMgr,
				UserLogger: ro.UserLogger,
			}, showDiff)
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			logger := zerolog.Ctx(ctx)
			if err := operation.NewRunner(logger, ro.Config.Async).Run(ctx, op); err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a diff for each pending file")

	return cmd
}
