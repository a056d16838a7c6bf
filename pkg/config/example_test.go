package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/rewriterc/pkg/config"
)

func ExampleLoad_yaml() {
	ctx := context.Background()
	// Create a temporary YAML config file
	configYAML := `
root: ./src
suffixes:
  - .cs
rules:
  - pattern: "using Core.Libraries.Application.Commands;"
    replace: "using Core.LibrariesApplication.Commands;"
  - pattern: "using Core.Libraries.Application.Queries;"
    replace: "using Core.LibrariesApplication.Queries;"
  - pattern: "using Techleap.Core.Domain.Exceptions;"
    replace: "using Core.Libraries.Domain.Exceptions;"
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, "rewriterc-example.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load and validate the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	// Print some config details
	fmt.Printf("Loaded %d rules for %d suffixes\n", len(cfg.Rules), len(cfg.Suffixes))
	fmt.Printf("Root: %s\n", cfg.Root)
	fmt.Printf("First rule: %s -> %s\n", cfg.Rules[0].Pattern, cfg.Rules[0].Replace)

	// Output:
	// Loaded 3 rules for 1 suffixes
	// Root: src
	// First rule: using Core.Libraries.Application.Commands; -> using Core.LibrariesApplication.Commands;
}

func ExampleLoad_hcl() {
	ctx := context.Background()
	// Create a temporary HCL config file
	configHCL := `
suffixes = [".cs"]

rule {
  pattern = "using Core.Libraries.Application.Commands;"
  replace = "using Core.LibrariesApplication.Commands;"
}

rule {
  pattern = "Techleap\\.Core\\.Domain"
  replace = "Core.Libraries.Domain"
  regex   = true
}
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, "rewriterc-example.hcl")
	if err := os.WriteFile(configPath, []byte(configHCL), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load and validate the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	// Print some config details
	fmt.Printf("Loaded %d rules for %d suffixes\n", len(cfg.Rules), len(cfg.Suffixes))
	fmt.Printf("Root: %s\n", cfg.Root)
	fmt.Printf("Second rule is regex: %v\n", cfg.Rules[1].Regex)

	// Output:
	// Loaded 2 rules for 1 suffixes
	// Root: .
	// Second rule is regex: true
}

func ExampleConfig_Validate() {
	// Create an invalid config
	cfg := &config.Config{
		Suffixes: []string{".cs"},
	}

	// Try to validate
	err := cfg.Validate()
	fmt.Printf("Validation error: %v\n", err)

	// Fix the config
	cfg.Rules = []config.Rule{
		{Pattern: "foo", Replace: "bar"},
	}

	// Validate again
	err = cfg.Validate()
	fmt.Printf("Config is valid: %v\n", err == nil)
	fmt.Printf("Root defaulted to: %s\n", cfg.Root)

	// Output:
	// Validation error: at least one rule is required
	// Config is valid: true
	// Root defaulted to: .
}
