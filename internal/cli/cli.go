package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		if len(args) > 1 {
			cmd := findCommand(args[1])
			if cmd == nil {
				fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[1])
				printUsage(stderr)
				return ExitUsage
			}
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  chembench <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"chembench <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold the .chembench config and taxonomy", []string{
		"chembench init [--spec <path>]",
	}, runInit),
	command("validate", "Validate the benchmark config", []string{
		"chembench validate [--spec <path>]",
	}, runValidate),
	command("fetch", "Build the ground-truth table", []string{
		"chembench fetch [--spec <path>] [--output-dir <dir>] [--verbose]",
	}, runFetch),
	command("run", "Run the benchmark against the classifier", []string{
		"chembench run [--spec <path>] [--output-dir <dir>] [--api-url <url>] [--api-key <key>]",
		"chembench run [--workers <n>] [--skip-fetch] [--ui auto|live|plain] [--verbose] [--no-color]",
	}, runRun),
	command("report", "Re-render reports for a saved run", []string{
		"chembench report [--spec <path>] [--input <dir>] [--run <run-id|latest>] [--output <path>]",
	}, runReport),
	command("compare", "Compare metrics between two runs", []string{
		"chembench compare --base <run-id> [--head <run-id|latest>] [--input <dir>]",
		"chembench compare --base <run-id> [--head <run-id>] --db <warehouse.duckdb>",
	}, runCompare),
	command("ingest", "Load run results into the DuckDB warehouse", []string{
		"chembench ingest [--db <warehouse.duckdb>] <run-dir>...",
	}, runIngest),
	command("serve", "Serve ingested runs over HTTP", []string{
		"chembench serve [--addr <host:port>] [--spec <path>] <warehouse.duckdb>",
	}, runServe),
	command("version", "Print the version", []string{
		"chembench version",
	}, runVersion),
}
