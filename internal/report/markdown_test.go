package report

import (
	"strings"
	"testing"
	"time"

	"chembench/internal/compound"
	"chembench/internal/metrics"
	"chembench/internal/runner"
	"chembench/internal/spec"
)

func defaultTargets() spec.TargetsConfig {
	return spec.TargetsConfig{
		Sensitivity:      0.95,
		Specificity:      0.99,
		Precision:        0.95,
		F1:               0.95,
		Accuracy:         0.97,
		ScheduleAccuracy: 0.90,
		WhitelistRate:    0.95,
	}
}

func sampleResults(runID string) runner.Results {
	observations := []compound.Observation{
		{Name: "heroin", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "I", DetectedRegulated: true, DetectedTier: "I"},
		{Name: "fentanyl", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "II", DetectedRegulated: true, DetectedTier: "II", ScaffoldMatch: true},
		{Name: "ketamine", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "III"},
		{Name: "aspirin", Category: compound.CategoryApproved, DetectedWhitelisted: true},
		{Name: "ibuprofen", Category: compound.CategoryApproved, DetectedRegulated: true, FlagCount: 2},
		{Name: "caffeine", Category: compound.CategoryNegativeControl},
		{Name: "cocaine", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "II", Error: "HTTP 500"},
	}
	return runner.Results{
		RunID:        runID,
		Classifier:   runner.ClassifierInfo{BaseURL: "https://classifier.example", Authenticated: true},
		Taxonomy:     runner.TaxonomyInfo{Path: "taxonomy.yml", SHA256: "deadbeef", Compounds: 7},
		Observations: observations,
		Metrics:      metrics.Evaluate(compound.ResultsSet{Observations: observations}),
	}
}

func TestMarkdownReport(t *testing.T) {
	results := sampleResults("20250314T092653Z-0a0b0c0d0e0f")
	generatedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	markdown := Markdown(results, defaultTargets(), generatedAt)

	for _, want := range []string{
		"# Regulatory Detection Benchmark",
		"**Run:** 20250314T092653Z-0a0b0c0d0e0f",
		"**Generated:** 2025-03-14 09:30:00",
		"**Classifier:** https://classifier.example",
		"- **3** DEA controlled substances (Schedule I-V)",
		"- **3** approved non-controlled drugs and negative controls",
		"| **Sensitivity** (detect controlled) | 66.7% | >95.0% | FAIL |",
		"| **F1 Score** | 0.667 | >0.950 | FAIL |",
		"| **Schedule Accuracy** | 100.0% | >90.0% | PASS |",
		"| **Whitelist Coverage** | 50.0% | >95.0% | FAIL |",
		"| **Actually Controlled** | 2 (TP) | 1 (FN) |",
		"| **Actually Safe** | 1 (FP) | 2 (TN) |",
		"### Schedule I",
		"- Detected: 1 (100.0%)",
		"### Schedule III",
		"- Detected: 0 (0.0%)",
		"| ibuprofen | approved_non_regulated | 2 |",
		"| ketamine | Schedule III |",
		"| cocaine | HTTP 500 |",
		"`get_molecule_profile`",
	} {
		if !strings.Contains(markdown, want) {
			t.Fatalf("markdown missing %q\n\n%s", want, markdown)
		}
	}
	if !strings.Contains(markdown, "demonstrates acceptable regulatory detection") {
		t.Fatalf("conclusion should read acceptable below 0.9 F1:\n%s", markdown)
	}
}

func TestMarkdownConclusionStrong(t *testing.T) {
	observations := []compound.Observation{
		{Name: "heroin", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "I", DetectedRegulated: true, DetectedTier: "I"},
		{Name: "caffeine", Category: compound.CategoryNegativeControl},
	}
	results := runner.Results{
		RunID:        "20250314T100000Z-000000000000",
		Observations: observations,
		Metrics:      metrics.Evaluate(compound.ResultsSet{Observations: observations}),
	}

	markdown := Markdown(results, defaultTargets(), time.Now())
	if !strings.Contains(markdown, "demonstrates strong regulatory detection") {
		t.Fatalf("conclusion should read strong at perfect F1:\n%s", markdown)
	}
}

func TestMarkdownOmitsEmptyFindingTables(t *testing.T) {
	observations := []compound.Observation{
		{Name: "heroin", Category: compound.CategoryRegulated, ExpectedRegulated: true, ExpectedTier: "I", DetectedRegulated: true, DetectedTier: "I"},
	}
	results := runner.Results{
		RunID:        "20250314T100000Z-000000000000",
		Observations: observations,
		Metrics:      metrics.Evaluate(compound.ResultsSet{Observations: observations}),
	}

	markdown := Markdown(results, defaultTargets(), time.Now())
	for _, absent := range []string{"## False Positives", "## False Negatives", "## Errors"} {
		if strings.Contains(markdown, absent) {
			t.Fatalf("markdown should omit %q when empty:\n%s", absent, markdown)
		}
	}
}
