package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chembench/internal/compound"
	"chembench/internal/config"
	"chembench/internal/metrics"
	"chembench/internal/runner"
)

// scaffoldProject creates a temp project with a default .chembench config
// and returns its root.
func scaffoldProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := config.Scaffold(config.ConfigPath(root), ""); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}
	return root
}

// benchmarkRun builds a small all-correct results document.
func benchmarkRun(runID string) runner.Results {
	return resultsFor(runID, []compound.Observation{
		{
			Name:              "heroin",
			StructureID:       "SMILES-HEROIN",
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "I",
			DetectedRegulated: true,
			DetectedTier:      "I",
		},
		{
			Name:                "aspirin",
			StructureID:         "SMILES-ASPIRIN",
			Category:            compound.CategoryApproved,
			DetectedWhitelisted: true,
		},
	})
}

// regressedRun builds a results document with a false positive, so its
// metrics differ from benchmarkRun.
func regressedRun(runID string) runner.Results {
	return resultsFor(runID, []compound.Observation{
		{
			Name:              "heroin",
			StructureID:       "SMILES-HEROIN",
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "I",
			DetectedRegulated: true,
			DetectedTier:      "I",
		},
		{
			Name:              "aspirin",
			StructureID:       "SMILES-ASPIRIN",
			Category:          compound.CategoryApproved,
			DetectedRegulated: true,
			DetectedTier:      "IV",
			FlagCount:         2,
		},
	})
}

func resultsFor(runID string, observations []compound.Observation) runner.Results {
	startedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	report := metrics.Evaluate(compound.ResultsSet{Observations: observations})
	return runner.Results{
		RunID:        runID,
		StartedAt:    startedAt,
		FinishedAt:   startedAt.Add(30 * time.Second),
		Classifier:   runner.ClassifierInfo{BaseURL: "https://classifier.example"},
		Observations: observations,
		Metrics:      report,
		Summary: runner.RunSummary{
			CompoundsTotal:  len(observations),
			CompoundsTested: len(observations),
			Accuracy:        report.Accuracy,
			F1:              report.F1,
			DurationSeconds: 30,
		},
	}
}

// writeRunDir saves a results document under outputDir the way a run would,
// returning the run directory.
func writeRunDir(t *testing.T, outputDir string, results runner.Results) string {
	t.Helper()
	runDir := filepath.Join(outputDir, results.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		t.Fatalf("create run dir: %v", err)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		t.Fatalf("marshal results: %v", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "results.json"), data, 0o644); err != nil {
		t.Fatalf("write results.json: %v", err)
	}
	return runDir
}
