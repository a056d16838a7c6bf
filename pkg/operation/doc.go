/*
Package operation implements the core business logic for rewriting namespaces in files.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates discovery and rewriting of matching files
- Applies the compiled rule set to file contents
- Coordinates between discover (source) and status (reporting)

🔄 Flow:
1. Receives file paths from the walker
2. Applies transformations (rule set fold)
3. Writes changed files back in place
4. Reports progress via status manager

⚡ Key Responsibilities:
- File content transformation
- Conditional write-back (only when content changed)
- Coordinating async operations
- Error handling and recovery

🤝 Interfaces:
- Walker: source of truth for which files to visit
- StatusMgr: tracks per-file outcomes and the run report
- Config: provides operation parameters

📝 Design Philosophy:
The operation package is the heart of rewriterc, but it stays focused on
orchestration. Pattern matching lives in rewrite, traversal in discover, and
reporting in status. A file that fails to read or decode is reported and
skipped; only a root that cannot be traversed aborts the run.

🔍 Example:

	op, err := operation.NewRewriteOperation(operation.Options{
		Config:     cfg,
		Rules:      rules,
		StatusMgr:  statusMgr,
		UserLogger: userLogger,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(logger, cfg.Async).Run(ctx, op)

💡 Ideal Flow:
1. Discover files under the root
2. Transform content (rule fold)
3. Write back when changed
4. Summarize the run
*/
package operation
