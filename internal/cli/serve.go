package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chembench/internal/config"
	"chembench/internal/reportserver"
	"chembench/internal/spec"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		specPath := fs.String("spec", "", "Path to config file for report targets")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		dbPath := fs.Arg(0)
		if dbPath == "" {
			fmt.Fprintln(stderr, "Missing <warehouse.duckdb>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(stderr, "Warehouse not found: %v\n", err)
			return ExitError
		}

		targets, err := serveTargets(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		cfg := reportserver.Config{
			Addr:    *addr,
			DBPath:  dbPath,
			Targets: targets,
		}
		fmt.Fprintf(stdout, "Serving reports at http://%s\n", cfg.Addr)
		if err := serveReport(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// serveTargets resolves report targets from the config when one is available
// and falls back to the defaults otherwise. An explicit --spec that fails to
// load is an error.
func serveTargets(specPath string) (spec.TargetsConfig, error) {
	if strings.TrimSpace(specPath) == "" {
		found, err := config.FindConfigPath("")
		if err != nil {
			return defaultTargets(), nil
		}
		specPath = found
	}
	resolved, err := resolveSpecPath(specPath)
	if err != nil {
		return spec.TargetsConfig{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return spec.TargetsConfig{}, err
	}
	return cfg.Report.Targets, nil
}
