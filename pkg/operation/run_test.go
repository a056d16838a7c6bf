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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/operation"
	"github.com/walteh/rewriterc/pkg/rewrite"
	"github.com/walteh/rewriterc/pkg/status"
)

// 🧪 createTestEnv compiles the config's rules and wires a status manager
// whose console output lands in the returned buffer
func createTestEnv(t *testing.T, cfg *config.Config) (context.Context, operation.Options, *bytes.Buffer) {
	t.Helper()

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	require.NoError(t, cfg.Validate(), "config should be valid")

	rules, err := rewrite.Compile(cfg.Rules)
	require.NoError(t, err, "compiling rules should succeed")

	console := &bytes.Buffer{}
	opts := operation.Options{
		Config:     cfg,
		Rules:      rules,
		StatusMgr:  status.New(console, &logger),
		UserLogger: status.NewUserLogger(ctx),
	}
	return ctx, opts, console
}

// 🧪 writeFiles lays out a fixture tree under root
func writeFiles(t *testing.T, root string, files map[string][]byte) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent dirs should succeed")
		require.NoError(t, os.WriteFile(path, content, 0644), "writing fixture should succeed")
	}
}

// 🧪 TestRewriteOperation tests the full rewrite flow over a real tree,
// using the namespace migration rule set this tool was built for
func TestRewriteOperation(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string][]byte{
		"src/Commands.cs":   []byte("using Core.Libraries.Application.Commands;\nusing Core.Libraries.Application.Queries;\n\nnamespace People.Application;\n"),
		"src/Exceptions.cs": []byte("using Techleap.Core.Domain.Exceptions;\n"),
		"src/Clean.cs":      []byte("using System;\n"),
		"Binary.cs":         {0xff, 0xfe, 0xfd},
		"notes.md":          []byte("Core.Libraries.Application.Commands is mentioned here\n"),
	})

	cfg := &config.Config{
		Root:     root,
		Suffixes: []string{".cs"},
		Rules: []config.Rule{
			{Pattern: "using Core.Libraries.Application.Commands;", Replace: "using Core.LibrariesApplication.Commands;"},
			{Pattern: "using Core.Libraries.Application.Queries;", Replace: "using Core.LibrariesApplication.Queries;"},
			{Pattern: "using Techleap.Core.Domain.Exceptions;", Replace: "using Core.Libraries.Domain.Exceptions;"},
		},
	}

	ctx, opts, console := createTestEnv(t, cfg)

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")
	require.NoError(t, op.Execute(ctx), "execute should succeed despite the binary file")

	content, err := os.ReadFile(filepath.Join(root, "src", "Commands.cs"))
	require.NoError(t, err, "reading rewritten file should succeed")
	assert.Equal(t, "using Core.LibrariesApplication.Commands;\nusing Core.LibrariesApplication.Queries;\n\nnamespace People.Application;\n", string(content), "both import lines should be rewritten")

	content, err = os.ReadFile(filepath.Join(root, "src", "Exceptions.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using Core.Libraries.Domain.Exceptions;\n", string(content), "the exceptions import should be rewritten")

	content, err = os.ReadFile(filepath.Join(root, "src", "Clean.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using System;\n", string(content), "files without matches should be untouched")

	content, err = os.ReadFile(filepath.Join(root, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "Core.Libraries.Application.Commands is mentioned here\n", string(content), "files outside the suffix list should be untouched")

	report := opts.StatusMgr.Report()
	assert.Equal(t, 4, report.Discovered, "four .cs files should be discovered")
	assert.Equal(t, 2, report.Rewritten, "two files should be rewritten")
	assert.Equal(t, 1, report.Unchanged, "one file should be unchanged")
	assert.Equal(t, 1, report.Failed, "the binary file should fail decoding")

	out := console.String()
	assert.Contains(t, out, "src/Commands.cs", "console should list rewritten files")
	assert.Contains(t, out, "src/Exceptions.cs", "console should list rewritten files")
	assert.NotContains(t, out, "src/Clean.cs", "console should not list unchanged files")
}

// 🧪 TestRewriteOperationDryRun tests that dry runs report without writing
func TestRewriteOperationDryRun(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string][]byte{
		"Program.cs": []byte("using Old.Core;\n"),
		"Clean.cs":   []byte("using System;\n"),
	})

	cfg := &config.Config{
		Root:     root,
		Suffixes: []string{".cs"},
		Rules: []config.Rule{
			{Pattern: "Old.Core", Replace: "New.Core"},
		},
		DryRun: true,
	}

	ctx, opts, console := createTestEnv(t, cfg)

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")
	require.NoError(t, op.Execute(ctx), "execute should succeed")

	content, err := os.ReadFile(filepath.Join(root, "Program.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using Old.Core;\n", string(content), "dry run should not touch the file")

	report := opts.StatusMgr.Report()
	assert.Equal(t, 1, report.Pending, "the changed file should be pending")
	assert.Equal(t, 1, report.Unchanged, "the clean file should be unchanged")
	assert.Zero(t, report.Rewritten, "nothing should be rewritten in a dry run")

	assert.Contains(t, console.String(), "Program.cs", "console should list pending files")
	assert.Contains(t, console.String(), "pending", "console should show the pending status")
}

// 🧪 TestRewriteOperationIgnore tests that ignore globs keep files out of the run
func TestRewriteOperationIgnore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string][]byte{
		"src/Program.cs": []byte("using Old.Core;\n"),
		"obj/Gen.cs":     []byte("using Old.Core;\n"),
	})

	cfg := &config.Config{
		Root:     root,
		Suffixes: []string{".cs"},
		Ignore:   []string{"obj"},
		Rules: []config.Rule{
			{Pattern: "Old.Core", Replace: "New.Core"},
		},
	}

	ctx, opts, _ := createTestEnv(t, cfg)

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")
	require.NoError(t, op.Execute(ctx), "execute should succeed")

	content, err := os.ReadFile(filepath.Join(root, "obj", "Gen.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using Old.Core;\n", string(content), "ignored files should be untouched")

	report := opts.StatusMgr.Report()
	assert.Equal(t, 1, report.Discovered, "only the src file should be discovered")
	assert.Equal(t, 1, report.Rewritten, "only the src file should be rewritten")
}

// 🧪 TestRewriteOperationDanglingSymlink tests that a broken link is skipped,
// not fatal
func TestRewriteOperationDanglingSymlink(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string][]byte{
		"Program.cs": []byte("using Old.Core;\n"),
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.cs"), filepath.Join(root, "broken.cs")), "creating symlink should succeed")

	cfg := &config.Config{
		Root:     root,
		Suffixes: []string{".cs"},
		Rules: []config.Rule{
			{Pattern: "Old.Core", Replace: "New.Core"},
		},
	}

	ctx, opts, _ := createTestEnv(t, cfg)

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")
	require.NoError(t, op.Execute(ctx), "a dangling symlink should not abort the run")

	report := opts.StatusMgr.Report()
	assert.Equal(t, 1, report.Rewritten, "the real file should still be rewritten")
	assert.Equal(t, 1, report.Failed, "the dangling symlink should be reported as failed")
}

// 🧪 TestRewriteOperationMissingRoot tests that an unusable root is fatal
func TestRewriteOperationMissingRoot(t *testing.T) {
	cfg := &config.Config{
		Root:     filepath.Join(t.TempDir(), "missing"),
		Suffixes: []string{".cs"},
		Rules: []config.Rule{
			{Pattern: "Old.Core", Replace: "New.Core"},
		},
	}

	ctx, opts, _ := createTestEnv(t, cfg)

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")

	err = op.Execute(ctx)
	require.Error(t, err, "a missing root should abort the run")
	assert.Contains(t, err.Error(), "discovering files", "error should point at discovery")
}

// 🧪 TestRewriteOperationCancelled tests that a cancelled context stops the run
func TestRewriteOperationCancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string][]byte{
		"Program.cs": []byte("using Old.Core;\n"),
	})

	cfg := &config.Config{
		Root:     root,
		Suffixes: []string{".cs"},
		Rules: []config.Rule{
			{Pattern: "Old.Core", Replace: "New.Core"},
		},
	}

	ctx, opts, _ := createTestEnv(t, cfg)
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	op, err := operation.NewRewriteOperation(opts)
	require.NoError(t, err, "creating operation should succeed")

	err = op.Execute(cancelled)
	require.Error(t, err, "a cancelled context should abort the run")
	assert.Contains(t, err.Error(), "run cancelled", "error should report the cancellation")

	content, err := os.ReadFile(filepath.Join(root, "Program.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using Old.Core;\n", string(content), "no file should be written after cancellation")
}

// 🧪 TestNewRewriteOperationValidates tests option validation at construction
func TestNewRewriteOperationValidates(t *testing.T) {
	_, err := operation.NewRewriteOperation(operation.Options{})
	require.Error(t, err, "empty options should fail")
	assert.Contains(t, err.Error(), "validating options", "error should point at validation")
}
