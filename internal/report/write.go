package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chembench/internal/runner"
	"chembench/internal/spec"
)

// WriteRunReports renders and writes the markdown and HTML reports into the
// run directory.
func WriteRunReports(results runner.Results, targets spec.TargetsConfig, paths runner.OutputPaths, generatedAt time.Time) error {
	markdown := Markdown(results, targets, generatedAt)
	if err := os.WriteFile(paths.ReportMarkdownPath(), []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(paths.ReportMarkdownPath()), err)
	}

	page, err := RenderHTML(results, targets, generatedAt)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	if err := os.WriteFile(paths.ReportHTMLPath(), []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(paths.ReportHTMLPath()), err)
	}
	return nil
}
