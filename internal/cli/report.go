package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"chembench/internal/report"
	"chembench/internal/runner"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .chembench/config.yml)")
		inputDir := fs.String("input", "", "Directory containing runs")
		runRef := fs.String("run", "", "Run ID (default: latest)")
		outputPath := fs.String("output", "", "Write the HTML report to this path instead")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		outputDir, targets, err := resolveRunsDir(*inputDir, *specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve input: %v\n", err)
			return ExitError
		}
		results, _, err := resolveRun(outputDir, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Run not found: %v\n", err)
			return ExitError
		}

		if *outputPath != "" {
			html, err := report.RenderHTML(results, targets, time.Now())
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			if err := os.WriteFile(*outputPath, []byte(html), 0o644); err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Report: %s\n", *outputPath)
			return ExitOK
		}

		paths, err := runner.NewOutputPaths(outputDir, results.RunID)
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		if err := report.WriteRunReports(results, targets, paths, time.Now()); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportMarkdownPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportHTMLPath())
		return ExitOK
	}
}
