package status

import (
	"fmt"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // Base width for the file path column
)

// FileFormatter defines how per-file results and run summaries are formatted
type FileFormatter interface {
	// FormatFileLine formats the progress line for a single file
	FormatFileLine(info FileInfo) string

	// FormatSummary formats the trailing run summary
	FormatSummary(report Report) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileLine formats a file result as an aligned, color-coded line
func (f *DefaultFileFormatter) FormatFileLine(info FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	switch info.Status {
	case StatusRewritten:
		symbol = '⟳'
		symbolColor = color.FgGreen
	case StatusPending:
		symbol = '±'
		symbolColor = color.FgYellow
	case StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgHiBlack
	}

	line := fmt.Sprintf("%*s%s %-*s %s",
		fileIndent, "",
		color.New(symbolColor).Sprint(string(symbol)),
		nameWidth, info.Path,
		info.Status)

	if info.Replacements > 0 {
		line += fmt.Sprintf(" (%d replaced)", info.Replacements)
	}
	if info.Error != nil {
		line += fmt.Sprintf(": %v", info.Error)
	}

	return line
}

// FormatSummary formats the run counters as a single trailing line
func (f *DefaultFileFormatter) FormatSummary(report Report) string {
	switch {
	case report.Pending > 0:
		return fmt.Sprintf("%d of %d files need rewriting", report.Pending, report.Discovered)
	case report.Rewritten > 0:
		return fmt.Sprintf("Rewrote %d of %d files", report.Rewritten, report.Discovered)
	default:
		return fmt.Sprintf("No changes in %d files", report.Discovered)
	}
}
