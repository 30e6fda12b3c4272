package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"chembench/internal/config"
	"chembench/internal/runner"
)

// fetchGroundTruth is a test seam for building the ground truth.
var fetchGroundTruth = runner.FetchGroundTruth

// runFetch builds the handler for the fetch command.
func runFetch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .chembench/config.yml)")
		outputDir := fs.String("output-dir", "", "Override output directory")
		verbose := fs.Bool("verbose", false, "Log every lookup outcome")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		truth, path, err := fetchGroundTruth(context.Background(), cfg, runner.RunParams{
			Root:      config.RootFromConfigPath(resolvedSpec),
			OutputDir: *outputDir,
			Deps: runner.RunDependencies{
				Observer: &plainObserver{out: stdout, verbose: *verbose},
			},
		})
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Resolved structures for %d compounds\n", truth.Len())
		fmt.Fprintf(stdout, "Ground truth: %s\n", path)
		return ExitOK
	}
}
