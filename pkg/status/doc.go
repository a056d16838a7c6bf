/*
Package status tracks per-file results and renders user-facing output for rewriterc.

	            +-------------+
	            |   Manager   |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	| Formatter |           |  User   |
	| (Lines)   |           | Logger  |
	+-----------+           +---------+

🎯 Purpose:
- Tracks the outcome of every processed file
- Aggregates run counters (discovered, rewritten, unchanged, failed)
- Renders aligned per-file progress lines
- Narrates the run preamble and summary

🔄 Flow:
1. Operation reports how many files were discovered
2. Each processed file is tracked with its status
3. Changed files get a console line; failures go to the structured log
4. The final report feeds the trailing summary

⚡ Key Responsibilities:
- Status tracking
- Run counters
- Progress line formatting
- User-facing summaries

🤝 Interfaces:
- FileFormatter: Formats per-file lines and summaries
- Manager: Records results and owns the counters
- UserLogger: Renders preamble, summary and validation messages

📝 Design Philosophy:
The status package separates what happened from how it is shown. The
Manager only records facts; the FileFormatter decides how a line looks;
the UserLogger speaks to the person running the tool. Progress lines go
to stdout and structured logs go to stderr, so scripted callers can
consume one stream without parsing the other.

🔍 Example:

	mgr := status.New(os.Stdout, logger)

	mgr.StartRun(ctx, len(files))
	mgr.Track(ctx, status.FileInfo{
		Path:         "src/Program.cs",
		Status:       status.StatusRewritten,
		Replacements: 2,
	})

	report := mgr.Report()
	userLogger.Summary(report)
*/
package status
