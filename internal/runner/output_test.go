package runner

import (
	"path/filepath"
	"testing"
)

func TestOutputPathsLayout(t *testing.T) {
	paths, err := NewOutputPaths("/data/results", "20250314T092653Z-0a0b0c0d0e0f")
	if err != nil {
		t.Fatalf("NewOutputPaths() error = %v", err)
	}

	runDir := filepath.Join("/data/results", "20250314T092653Z-0a0b0c0d0e0f")
	if paths.RunDir() != runDir {
		t.Fatalf("RunDir() = %q", paths.RunDir())
	}
	if got := paths.SharedGroundTruthPath(); got != filepath.Join("/data/results", "ground_truth.csv") {
		t.Fatalf("SharedGroundTruthPath() = %q", got)
	}
	wantInRunDir := map[string]string{
		"GroundTruthPath":    paths.GroundTruthPath(),
		"ResultsJSONPath":    paths.ResultsJSONPath(),
		"ResultsCSVPath":     paths.ResultsCSVPath(),
		"ReportMarkdownPath": paths.ReportMarkdownPath(),
		"ReportHTMLPath":     paths.ReportHTMLPath(),
	}
	for name, path := range wantInRunDir {
		if filepath.Dir(path) != runDir {
			t.Fatalf("%s = %q, want inside %q", name, path, runDir)
		}
	}
}

func TestNewOutputPathsValidation(t *testing.T) {
	if _, err := NewOutputPaths("", "run"); err == nil {
		t.Fatal("NewOutputPaths() expected error for empty root")
	}
	if _, err := NewOutputPaths("/out", "  "); err == nil {
		t.Fatal("NewOutputPaths() expected error for blank run id")
	}
}
