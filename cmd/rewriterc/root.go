package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/rewrite"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	rootDir    string
)

// newRootOpts loads the config and wires the dependencies shared by all
// commands. It runs inside RunE so flag values are already parsed.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// The --root flag wins over whatever the config file says
	if rootDir != "" {
		cfg.Root = filepath.Clean(rootDir)
	}

	rules, err := rewrite.Compile(cfg.Rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	return &opts.RootOpts{
		Config:     cfg,
		Rules:      rules,
		StatusMgr:  status.New(os.Stdout, zerolog.Ctx(ctx)),
		UserLogger: status.NewUserLogger(ctx),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".rewriterc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "override the root directory from the config")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
