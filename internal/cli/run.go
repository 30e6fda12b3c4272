package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"chembench/internal/config"
	"chembench/internal/report"
	"chembench/internal/runner"
	"chembench/internal/ui/live"
)

// runAndWrite is a test seam for executing runs.
var runAndWrite = runner.RunAndWrite

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .chembench/config.yml)")
		outputDir := fs.String("output-dir", "", "Override output directory")
		apiURL := fs.String("api-url", "", "Override classifier base URL")
		apiKey := fs.String("api-key", "", "Classifier API key (default: configured env var)")
		workers := fs.Int("workers", 0, "Override classification concurrency")
		skipFetch := fs.Bool("skip-fetch", false, "Reuse the saved ground-truth table")
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		verbose := fs.Bool("verbose", false, "Log every compound outcome")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
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

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		params := runner.RunParams{
			Root:      config.RootFromConfigPath(resolvedSpec),
			OutputDir: *outputDir,
			APIURL:    *apiURL,
			APIKey:    *apiKey,
			Workers:   *workers,
			SkipFetch: *skipFetch,
		}

		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			params.Deps.Observer = controller
		} else {
			params.Deps.Observer = &plainObserver{out: stdout, verbose: *verbose}
		}

		results, paths, runErr := runAndWrite(context.Background(), cfg, params)
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if runErr != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", runErr)
			return ExitError
		}

		if err := report.WriteRunReports(results, cfg.Report.Targets, paths, time.Now()); err != nil {
			fmt.Fprintf(stderr, "Run %s completed but reports failed: %v\n", results.RunID, err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		fmt.Fprintf(stdout, "Tested %d of %d compounds: accuracy %.1f%%, F1 %.3f\n",
			results.Summary.CompoundsTested, results.Summary.CompoundsTotal,
			results.Metrics.Accuracy*100, results.Metrics.F1)
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsJSONPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportHTMLPath())
		return ExitOK
	}
}
