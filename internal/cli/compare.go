package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"chembench/internal/config"
	"chembench/internal/duckdb"
	"chembench/internal/report"
	"chembench/internal/runner"
	"chembench/internal/spec"
)

// resolveRun is a test seam for locating saved runs.
var resolveRun = report.ResolveRun

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing runs")
		specPath := fs.String("spec", "", "Path to config file (default: search for .chembench/config.yml)")
		dbPath := fs.String("db", "", "Compare runs from a DuckDB warehouse instead")
		baseRef := fs.String("base", "", "Base run ID")
		headRef := fs.String("head", "", "Head run ID (default: latest)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		if *baseRef == "" {
			fmt.Fprintln(stderr, "Missing --base")
			return ExitUsage
		}

		var base, head runner.Results
		var err error
		if *dbPath != "" {
			base, head, err = loadComparedWarehouseRuns(*dbPath, *baseRef, *headRef)
		} else {
			base, head, err = loadComparedRuns(*inputDir, *specPath, *baseRef, *headRef)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Compare failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Base %s (accuracy %.1f%%, F1 %.3f)\n", base.RunID, base.Metrics.Accuracy*100, base.Metrics.F1)
		fmt.Fprintf(stdout, "Head %s (accuracy %.1f%%, F1 %.3f)\n", head.RunID, head.Metrics.Accuracy*100, head.Metrics.F1)
		for _, delta := range report.Compare(base, head) {
			fmt.Fprintf(stdout, "%-18s %7.4f -> %7.4f  %+.4f\n", delta.Name, delta.Base, delta.Head, delta.Delta)
		}
		return ExitOK
	}
}

// loadComparedRuns resolves both runs from saved run directories.
func loadComparedRuns(inputDir, specPath, baseRef, headRef string) (runner.Results, runner.Results, error) {
	outputDir, _, err := resolveRunsDir(inputDir, specPath)
	if err != nil {
		return runner.Results{}, runner.Results{}, err
	}
	base, _, err := resolveRun(outputDir, baseRef)
	if err != nil {
		return runner.Results{}, runner.Results{}, fmt.Errorf("base run: %w", err)
	}
	head, _, err := resolveRun(outputDir, headRef)
	if err != nil {
		return runner.Results{}, runner.Results{}, fmt.Errorf("head run: %w", err)
	}
	return base, head, nil
}

// loadComparedWarehouseRuns resolves both runs from an ingested warehouse.
// An empty head ref selects the newest ingested run.
func loadComparedWarehouseRuns(dbPath, baseRef, headRef string) (runner.Results, runner.Results, error) {
	ctx := context.Background()
	db, err := duckdb.Open(ctx, dbPath)
	if err != nil {
		return runner.Results{}, runner.Results{}, err
	}
	defer db.Close()

	if headRef == "" || headRef == "latest" {
		headRef, err = latestIngestedRunID(ctx, db)
		if err != nil {
			return runner.Results{}, runner.Results{}, err
		}
	}
	base, err := duckdb.LoadRunResults(ctx, db, baseRef)
	if err != nil {
		return runner.Results{}, runner.Results{}, fmt.Errorf("base run: %w", err)
	}
	head, err := duckdb.LoadRunResults(ctx, db, headRef)
	if err != nil {
		return runner.Results{}, runner.Results{}, fmt.Errorf("head run: %w", err)
	}
	return base, head, nil
}

// latestIngestedRunID returns the newest run ID in the warehouse.
func latestIngestedRunID(ctx context.Context, db *sql.DB) (string, error) {
	rows, err := duckdb.ListRuns(ctx, db)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("warehouse has no ingested runs")
	}
	return rows[len(rows)-1].RunID, nil
}

// resolveRunsDir determines the directory holding saved runs and the report
// targets to render against. An explicit --input directory skips the config
// and uses the default targets.
func resolveRunsDir(inputDir, specPath string) (string, spec.TargetsConfig, error) {
	if inputDir != "" {
		abs, err := filepath.Abs(inputDir)
		if err != nil {
			return "", spec.TargetsConfig{}, err
		}
		return abs, defaultTargets(), nil
	}
	resolvedSpec, err := resolveSpecPath(specPath)
	if err != nil {
		return "", spec.TargetsConfig{}, err
	}
	cfg, err := config.Load(resolvedSpec)
	if err != nil {
		return "", spec.TargetsConfig{}, err
	}
	root := config.RootFromConfigPath(resolvedSpec)
	return runner.ResolveOutputDir(cfg, root, ""), cfg.Report.Targets, nil
}

// defaultTargets returns the built-in pass thresholds.
func defaultTargets() spec.TargetsConfig {
	var cfg spec.Config
	config.Normalize(&cfg)
	return cfg.Report.Targets
}
