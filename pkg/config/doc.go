/*
Package config manages configuration parsing and validation for rewriterc.

	            +-------------+
	            |   Config    |
	            | (Rule list) |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates rule lists and suffix filters
- Preserves rule order from the source file
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values
4. Provides validated config to other packages

⚡ Key Responsibilities:
- Configuration parsing
- Schema validation
- Default value management
- Rule ordering
- Format abstraction

📝 Design Philosophy:
The config package is the source of truth for the rule set. Rules live in
configuration, never in code, so a rewrite can be changed without a rebuild.
The order of rules in the file is the order they run in; parsing must never
reorder them. Unknown fields are rejected in every format so a typo in a
rule key fails loudly instead of silently dropping the rule.

🔍 Example:

	cfg, err := config.Load(ctx, ".rewriterc.yaml")
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, rule := range cfg.Rules {
		fmt.Printf("%s -> %s\n", rule.Pattern, rule.Replace)
	}
*/
package config
