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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusRewritten            // Content changed and was written back
	StatusUnchanged            // No rule changed the content
	StatusPending              // Content would change but nothing was written
	StatusFailed               // File could not be processed and was skipped
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusUnchanged:
		return "unchanged"
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo records the result of processing one file
type FileInfo struct {
	Path         string     // Path relative to the root
	Status       FileStatus // Outcome for this file
	Replacements int        // Number of replacements applied
	Error        error      // Any error associated with this file
}

// 📈 Report summarizes a whole run
type Report struct {
	Discovered int // Files matched by the suffix filter
	Rewritten  int // Files whose content changed on disk
	Unchanged  int // Files no rule changed
	Pending    int // Files that would change (dry run / check)
	Failed     int // Files skipped because of errors
}

// 🔧 Manager tracks per-file results and renders progress lines
type Manager struct {
	console   io.Writer       // Destination for user-facing lines
	logger    *zerolog.Logger // Logger for structured output
	formatter FileFormatter   // Formatter for status messages

	// Status tracking
	mu     sync.RWMutex
	files  map[string]FileInfo
	report Report
}

// 🏭 New creates a new status manager
func New(console io.Writer, logger *zerolog.Logger) *Manager {
	return &Manager{
		console:   console,
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// Console returns the writer user-facing lines go to.
func (m *Manager) Console() io.Writer {
	return m.console
}

// 🚀 StartRun resets counters and records how many files were discovered
func (m *Manager) StartRun(ctx context.Context, discovered int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = make(map[string]FileInfo)
	m.report = Report{Discovered: discovered}

	m.logger.Debug().Int("discovered", discovered).Msg("run started")
}

// 📝 Track records the result for one file and prints its progress line.
// Only files that changed (or would change) get a console line; unchanged
// files stay quiet and failures go to the structured log.
func (m *Manager) Track(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info
	switch info.Status {
	case StatusRewritten:
		m.report.Rewritten++
	case StatusUnchanged:
		m.report.Unchanged++
	case StatusPending:
		m.report.Pending++
	case StatusFailed:
		m.report.Failed++
	}

	switch info.Status {
	case StatusRewritten, StatusPending:
		fmt.Fprintln(m.console, m.formatter.FormatFileLine(info))
	}

	evt := m.logger.Debug()
	if info.Error != nil {
		evt = m.logger.Error().Err(info.Error)
	}
	evt.Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg("file processed")
}

// 🔍 GetFileInfo returns the recorded result for a path
func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// 📋 ListFiles returns every recorded result
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	return files
}

// 📊 Report returns a snapshot of the run counters
func (m *Manager) Report() Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.report
}
