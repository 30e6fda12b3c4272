package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chembench/internal/compound"
	"chembench/internal/dataset"
)

const (
	groundTruthFileName    = "ground_truth.csv"
	resultsJSONFileName    = "results.json"
	resultsCSVFileName     = "results.csv"
	reportMarkdownFileName = "report.md"
	reportHTMLFileName     = "report.html"
)

// OutputPaths describes the filesystem layout of run outputs under one
// output directory. The shared ground-truth table sits at the root so later
// runs can reuse it; everything else lives in a per-run directory named
// after the run ID.
type OutputPaths struct {
	Root  string
	RunID string
}

// NewOutputPaths validates and builds the output layout for a run.
func NewOutputPaths(root, runID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is required")
	}
	if strings.TrimSpace(runID) == "" {
		return OutputPaths{}, fmt.Errorf("run id is required")
	}
	return OutputPaths{Root: root, RunID: runID}, nil
}

// SharedGroundTruthPath returns the reusable ground-truth table location.
func (p OutputPaths) SharedGroundTruthPath() string {
	return filepath.Join(p.Root, groundTruthFileName)
}

// RunDir returns the directory holding this run's artifacts.
func (p OutputPaths) RunDir() string {
	return filepath.Join(p.Root, p.RunID)
}

// ResultsJSONPath returns the location of the full run record.
func (p OutputPaths) ResultsJSONPath() string {
	return filepath.Join(p.RunDir(), resultsJSONFileName)
}

// GroundTruthPath returns the run's own ground-truth snapshot location.
func (p OutputPaths) GroundTruthPath() string {
	return filepath.Join(p.RunDir(), groundTruthFileName)
}

// ResultsCSVPath returns the per-compound results table location.
func (p OutputPaths) ResultsCSVPath() string {
	return filepath.Join(p.RunDir(), resultsCSVFileName)
}

// ReportMarkdownPath returns the markdown report location.
func (p OutputPaths) ReportMarkdownPath() string {
	return filepath.Join(p.RunDir(), reportMarkdownFileName)
}

// ReportHTMLPath returns the HTML report location.
func (p OutputPaths) ReportHTMLPath() string {
	return filepath.Join(p.RunDir(), reportHTMLFileName)
}

// WriteRunOutputs writes the run record, the per-run CSV tables, and the
// shared ground-truth table, creating directories as needed. Reports are
// rendered separately and land next to these files.
func WriteRunOutputs(results Results, outputDir string) (OutputPaths, error) {
	paths, err := NewOutputPaths(outputDir, results.RunID)
	if err != nil {
		return OutputPaths{}, err
	}
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return OutputPaths{}, fmt.Errorf("create run directory: %w", err)
	}
	if err := writeJSON(paths.ResultsJSONPath(), results); err != nil {
		return OutputPaths{}, err
	}
	if err := dataset.SaveGroundTruth(paths.GroundTruthPath(), results.GroundTruth); err != nil {
		return OutputPaths{}, err
	}
	if err := dataset.SaveResults(paths.ResultsCSVPath(), compound.ResultsSet{Observations: results.Observations}); err != nil {
		return OutputPaths{}, err
	}
	if err := dataset.SaveGroundTruth(paths.SharedGroundTruthPath(), results.GroundTruth); err != nil {
		return OutputPaths{}, err
	}
	return paths, nil
}

// writeJSON writes a value as indented JSON.
func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
