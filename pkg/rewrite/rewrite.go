package rewrite

import (
	"bytes"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rewriterc/pkg/config"
)

// Rule is a single compiled rewrite: a pattern and its replacement.
type Rule struct {
	pattern *regexp.Regexp
	replace string
	file    string // optional glob limiting the rule to matching paths
}

// RuleSet is an ordered list of compiled rules. Rules run first to last
// over the whole buffer, so later rules see the output of earlier ones.
type RuleSet []Rule

// Result contains the outcome of applying a rule set to a buffer.
type Result struct {
	// WasModified indicates whether the final content differs from the original
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Compile compiles configured rules into a RuleSet, preserving order.
// Patterns are treated as literal text unless the rule sets Regex, in
// which case the pattern must be a valid regular expression.
func Compile(rules []config.Rule) (RuleSet, error) {
	compiled := make(RuleSet, 0, len(rules))
	for i, r := range rules {
		expr := r.Pattern
		if !r.Regex {
			expr = regexp.QuoteMeta(expr)
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.Errorf("rules[%d]: compiling pattern: %w", i, err)
		}

		rule := Rule{pattern: re, replace: r.Replace}
		if r.File != nil && *r.File != "" {
			if !doublestar.ValidatePattern(*r.File) {
				return nil, errors.Errorf("rules[%d]: invalid file glob %q", i, *r.File)
			}
			rule.file = *r.File
		}

		compiled = append(compiled, rule)
	}
	return compiled, nil
}

// ForFile returns the rules that apply to the given slash-separated
// relative path, preserving order. Rules without a file glob always
// apply.
func (rs RuleSet) ForFile(relPath string) RuleSet {
	filtered := false
	for _, rule := range rs {
		if rule.file != "" {
			filtered = true
			break
		}
	}
	if !filtered {
		return rs
	}

	subset := make(RuleSet, 0, len(rs))
	for _, rule := range rs {
		if rule.file == "" {
			subset = append(subset, rule)
			continue
		}
		// Globs are validated at compile time, so the error can be ignored
		matched, _ := doublestar.Match(rule.file, relPath)
		if matched {
			subset = append(subset, rule)
		}
	}
	return subset
}

// Apply runs every rule in order against content. Each rule replaces
// all non-overlapping matches of its pattern in the whole buffer, and
// replacement text is inserted literally. Apply never mutates content.
func (rs RuleSet) Apply(content []byte) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	currentContent := string(content)
	for _, rule := range rs {
		newContent := rule.pattern.ReplaceAllLiteralString(currentContent, rule.replace)

		// Update counts if changed
		if newContent != currentContent {
			result.ReplacementCount += len(rule.pattern.FindAllStringIndex(currentContent, -1))
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = !bytes.Equal(result.ModifiedContent, result.OriginalContent)
	return result
}

// TODO(dr.methodical): 🧪 Add benchmarks for large buffers with many rules
