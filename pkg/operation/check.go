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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/rewriterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 checkOperation reports which files the rules would change without writing
type checkOperation struct {
	BaseOperation

	showDiff bool
}

// 🏭 NewCheckOperation creates a new check operation
func NewCheckOperation(opts Options, showDiff bool) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &checkOperation{BaseOperation: newBase(opts), showDiff: showDiff}, nil
}

// 🚀 Execute discovers matching files and reports pending rewrites
func (op *checkOperation) Execute(ctx context.Context) error {
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

		result, _, err := op.transformFile(file)
		if err != nil {
			logger.Error().Err(err).Str("file", file).Msg("skipping file")
			op.StatusMgr.Track(ctx, status.FileInfo{
				Path:   file,
				Status: status.StatusFailed,
				Error:  err,
			})
			continue
		}

		info := status.FileInfo{Path: file, Status: status.StatusUnchanged}
		if result.WasModified {
			info.Status = status.StatusPending
			info.Replacements = result.ReplacementCount
		}
		op.StatusMgr.Track(ctx, info)

		if result.WasModified && op.showDiff {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(result.OriginalContent), string(result.ModifiedContent), false)
			fmt.Fprintln(op.StatusMgr.Console(), dmp.DiffPrettyText(diffs))
		}
	}

	op.UserLogger.Summary(op.StatusMgr.Report())
	return nil
}
