package opts

import (
	"context"

	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/rewrite"
	"github.com/walteh/rewriterc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Rules      rewrite.RuleSet
	StatusMgr  *status.Manager
	UserLogger *status.UserLogger
}

// Provider builds RootOpts after command line flags have been parsed, so
// commands see the config the user actually pointed at.
type Provider func(ctx context.Context) (*RootOpts, error)
