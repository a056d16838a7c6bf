// Package operation provides the core logic for rewriting namespaces in source trees
package operation

import (
	"context"

	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/discover"
	"github.com/walteh/rewriterc/pkg/rewrite"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines the interface for rewriterc operations
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the rewriterc configuration
	Config *config.Config
	// Rules is the compiled rule set applied to file contents
	Rules rewrite.RuleSet
	// StatusMgr tracks per-file outcomes and the run report
	StatusMgr *status.Manager
	// UserLogger prints user-facing progress messages
	UserLogger *status.UserLogger
}

// validate checks that all required options are set
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if len(opts.Rules) == 0 {
		return errors.Errorf("rules are required")
	}
	if opts.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if opts.UserLogger == nil {
		return errors.Errorf("user logger is required")
	}
	return nil
}

// 🔧 BaseOperation provides common functionality for operations
type BaseOperation struct {
	Options
}

// newBase creates a new base operation from validated options
func newBase(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// walker builds a file walker for the configured root
func (op *BaseOperation) walker() *discover.Walker {
	return discover.New(op.Config.Root, discover.Options{
		Suffixes: op.Config.Suffixes,
		Ignore:   op.Config.Ignore,
	})
}
