package operation

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/rewriterc/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// ErrNotText is returned when a discovered file does not contain valid UTF-8 text.
var ErrNotText = errors.New("file content is not valid utf-8 text")

// absPath resolves a walker-relative path against the configured root.
func (op *BaseOperation) absPath(relPath string) string {
	return filepath.Join(op.Config.Root, filepath.FromSlash(relPath))
}

// transformFile reads a file and applies the rule set to its content. It does
// not write anything back; callers decide what to do with the result.
func (op *BaseOperation) transformFile(relPath string) (*rewrite.Result, os.FileMode, error) {
	path := op.absPath(relPath)

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, errors.Errorf("reading %s: %w", relPath, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Errorf("reading %s: %w", relPath, err)
	}

	if !utf8.Valid(content) {
		return nil, 0, errors.Errorf("decoding %s: %w", relPath, ErrNotText)
	}

	result := op.Rules.ForFile(relPath).Apply(content)
	return result, info.Mode().Perm(), nil
}

// processFile transforms a single file and writes it back when its content
// changed. It reports whether the file changed and how many replacements the
// rules made. In dry-run mode the write is skipped.
func (op *BaseOperation) processFile(ctx context.Context, relPath string, dryRun bool) (bool, int, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("file", relPath).Msg("processing file")

	result, mode, err := op.transformFile(relPath)
	if err != nil {
		return false, 0, err
	}

	if !result.WasModified {
		return false, 0, nil
	}

	if dryRun {
		return true, result.ReplacementCount, nil
	}

	if err := os.WriteFile(op.absPath(relPath), result.ModifiedContent, mode); err != nil {
		return false, 0, errors.Errorf("writing %s: %w", relPath, err)
	}

	return true, result.ReplacementCount, nil
}
