// Command timekeep-log views and analyzes timekeep traffic log files.
//
// Traffic logs are written by timekeep when run with -traffic-log.
//
// Usage:
//
//	timekeep-log <command> [flags] <file.tklog>
//
// Commands:
//
//	view     View requests in human-readable format
//	export   Export requests to JSONL or CSV
//	filter   Filter requests and write them to a new log file
//	stats    Show request statistics
//
// Examples:
//
//	# View failed requests only
//	timekeep-log view -failed timekeep.tklog
//
//	# Export all PUT requests to CSV
//	timekeep-log export -format csv -method put -o puts.csv timekeep.tklog
//
//	# Show statistics for 4xx responses
//	timekeep-log stats -status 4xx timekeep.tklog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/timekeep/timekeep-go/cmd/timekeep-log/commands"
)

const usage = `timekeep-log - Timekeep Traffic Log Analyzer

Usage:
  timekeep-log <command> [flags] <file.tklog>

Commands:
  view     View requests in human-readable format
  export   Export requests to JSONL or CSV
  filter   Filter requests and write them to a new log file
  stats    Show request statistics

Use "timekeep-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags bound to opts.
func newFlagSet(name, summary, synopsis string, opts *commands.FilterOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "timekeep-log %s - %s\n\nUsage:\n  %s\n\nFlags:\n", name, summary, synopsis)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.RequestID, "request-id", "", "Filter by request ID")
	fs.StringVar(&opts.Operation, "op", "", "Filter by operation (e.g. list-timers, replace-current-timer)")
	fs.StringVar(&opts.Method, "method", "", "Filter by HTTP method")
	fs.StringVar(&opts.Status, "status", "", "Filter by status class (2xx, 4xx, 5xx)")
	fs.BoolVar(&opts.FailedOnly, "failed", false, "Only failed requests")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs
}

// logPath parses args and returns the log file argument, exiting on misuse.
func logPath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runView(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("view", "View requests in human-readable format",
		"timekeep-log view [flags] <file.tklog>", &opts)
	path := logPath(fs, args)

	exitOnError(commands.RunView(path, opts, os.Stdout))
}

func runExport(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("export", "Export requests to JSONL or CSV",
		"timekeep-log export [flags] <file.tklog>", &opts)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := logPath(fs, args)

	exitOnError(commands.RunExport(path, *format, *output, opts, os.Stdout))
}

func runFilter(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("filter", "Filter requests and write them to a new log file",
		"timekeep-log filter [flags] -o <out.tklog> <file.tklog>", &opts)
	output := fs.String("o", "", "Output file (required)")
	path := logPath(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	exitOnError(commands.RunFilter(path, *output, opts, os.Stdout))
}

func runStats(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("stats", "Show request statistics",
		"timekeep-log stats [flags] <file.tklog>", &opts)
	path := logPath(fs, args)

	exitOnError(commands.RunStats(path, opts, os.Stdout))
}
