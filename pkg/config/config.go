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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule represents one rewrite applied to file contents. Rules are
// applied in the order they appear in the configuration.
type Rule struct {
	Pattern string  `json:"pattern" yaml:"pattern"`                 // Text to find (literal unless Regex is set)
	Replace string  `json:"replace" yaml:"replace"`                 // Replacement text, always inserted literally
	Regex   bool    `json:"regex,omitempty" yaml:"regex,omitempty"` // Treat Pattern as a regular expression
	File    *string `json:"file,omitempty" yaml:"file,omitempty"`   // Optional glob limiting the rule to matching paths
}

// 📚 Config represents the complete configuration
type Config struct {
	Root     string   `json:"root,omitempty" yaml:"root,omitempty"`       // Directory the walk starts from
	Suffixes []string `json:"suffixes" yaml:"suffixes"`                   // File name suffixes to rewrite
	Ignore   []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`   // Glob patterns for paths to skip
	Rules    []Rule   `json:"rules" yaml:"rules"`                         // Ordered rewrite rules
	DryRun   bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"` // Report changes without writing
	Async    bool     `json:"async,omitempty" yaml:"async,omitempty"`     // Run the operation in a background goroutine
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if len(cfg.Suffixes) == 0 {
		return errors.Errorf("at least one suffix is required")
	}
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	for i, r := range cfg.Rules {
		if r.Pattern == "" {
			return errors.Errorf("rules[%d]: pattern is required", i)
		}
	}

	// Bare extensions may be written without the leading dot
	for i, s := range cfg.Suffixes {
		if !strings.Contains(s, ".") {
			cfg.Suffixes[i] = "." + s
		}
	}

	// Set defaults and clean up paths
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (%s): %d rules", cfg.Root, strings.Join(cfg.Suffixes, ","), len(cfg.Rules))
}
