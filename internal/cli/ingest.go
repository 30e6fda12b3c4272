package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"chembench/internal/duckdb"
	"chembench/internal/report"
)

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dbPath := fs.String("db", "benchmark.duckdb", "DuckDB warehouse path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing <run-dir>")
			return ExitUsage
		}

		ctx := context.Background()
		db, err := duckdb.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := duckdb.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}

		for _, runDir := range fs.Args() {
			results, err := report.LoadResults(filepath.Join(runDir, "results.json"))
			if err != nil {
				fmt.Fprintf(stderr, "Ingest failed for %s: %v\n", runDir, err)
				return ExitError
			}
			if _, err := duckdb.IngestResults(ctx, db, results); err != nil {
				fmt.Fprintf(stderr, "Ingest failed for %s: %v\n", runDir, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Ingested run %s\n", results.RunID)
		}
		fmt.Fprintf(stdout, "Warehouse: %s\n", *dbPath)
		return ExitOK
	}
}
