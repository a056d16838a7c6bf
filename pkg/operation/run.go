// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 rewriteOperation applies the configured rules to every discovered file
type rewriteOperation struct {
	BaseOperation
}

// 🏭 NewRewriteOperation creates a new rewrite operation
func NewRewriteOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &rewriteOperation{BaseOperation: newBase(opts)}, nil
}

// 🚀 Execute discovers matching files and rewrites them in place
func (op *rewriteOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	files, err := op.walker().Files(ctx)
	if err != nil {
		return errors.Errorf("discovering files: %w", err)
	}

	op.UserLogger.Preamble(len(files))
	op.StatusMgr.StartRun(ctx, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run cancelled: %w", err)
		}

		changed, replacements, err := op.processFile(ctx, file, op.Config.DryRun)
		if err != nil {
			// One unreadable file must not abort the rest of the run.
			logger.Error().Err(err).Str("file", file).Msg("skipping file")
			op.StatusMgr.Track(ctx, status.FileInfo{
				Path:   file,
				Status: status.StatusFailed,
				Error:  err,
			})
			continue
		}

		info := status.FileInfo{Path: file, Replacements: replacements}
		switch {
		case changed && op.Config.DryRun:
			info.Status = status.StatusPending
		case changed:
			info.Status = status.StatusRewritten
		default:
			info.Status = status.StatusUnchanged
		}
		op.StatusMgr.Track(ctx, info)
	}

	op.UserLogger.Summary(op.StatusMgr.Report())
	return nil
}
