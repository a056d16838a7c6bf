package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Walker finds the files a rewrite run operates on. It descends from a
// single root directory, keeps files whose name ends with one of the
// configured suffixes, and drops anything matched by an ignore glob.
type Walker struct {
	root     string
	suffixes []string
	ignore   []string
}

// Options configures a Walker.
type Options struct {
	Suffixes []string // File name suffixes to keep (e.g. ".cs")
	Ignore   []string // Doublestar globs matched against root-relative paths
}

// New creates a Walker rooted at the given directory.
func New(root string, opts Options) *Walker {
	return &Walker{
		root:     root,
		suffixes: opts.Suffixes,
		ignore:   opts.Ignore,
	}
}

// Root returns the directory the walk starts from.
func (w *Walker) Root() string {
	return w.root
}

// Walk calls fn for every matching file with its root-relative,
// slash-separated path, in traversal order. An error from fn stops the
// walk. A missing or unreadable root fails before fn is ever called.
func (w *Walker) Walk(ctx context.Context, fn func(relPath string) error) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return errors.Errorf("resolving root: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("root %s is not a directory", w.root)
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// Prune ignored directories early
			if rel != "." && w.ignored(ctx, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.matchesSuffix(d.Name()) {
			return nil
		}
		if w.ignored(ctx, rel) {
			return nil
		}

		return fn(rel)
	})
}

// Files collects every matching path under the root. Discovery is eager
// so callers can report the full count before processing starts.
func (w *Walker) Files(ctx context.Context) ([]string, error) {
	var files []string
	err := w.Walk(ctx, func(relPath string) error {
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (w *Walker) matchesSuffix(name string) bool {
	for _, suffix := range w.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// ignored checks if a relative path matches any ignore pattern.
func (w *Walker) ignored(ctx context.Context, relPath string) bool {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range w.ignore {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			logger.Debug().
				Str("pattern", pattern).
				Str("path", relPath).
				Err(err).
				Msg("error matching ignore pattern")
			continue
		}
		if matched {
			logger.Debug().
				Str("path", relPath).
				Str("pattern", pattern).
				Msg("path ignored by pattern")
			return true
		}
	}

	return false
}

// TODO(dr.methodical): 🧪 Add tests for directory symlinks (WalkDir does not follow them)
