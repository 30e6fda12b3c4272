package runner

import (
	"time"

	"chembench/internal/compound"
	"chembench/internal/metrics"
)

// Results is the complete record of one benchmark run, written to
// results.json in the run directory.
type Results struct {
	RunID        string                  `json:"run_id"`
	StartedAt    time.Time               `json:"started_at"`
	FinishedAt   time.Time               `json:"finished_at"`
	Classifier   ClassifierInfo          `json:"classifier"`
	Taxonomy     TaxonomyInfo            `json:"taxonomy"`
	GroundTruth  compound.GroundTruthSet `json:"ground_truth"`
	Observations []compound.Observation  `json:"observations"`
	Metrics      metrics.Report          `json:"metrics"`
	Summary      RunSummary              `json:"summary"`
}

// ResultsSet returns the observations as a set for metric helpers.
func (r Results) ResultsSet() compound.ResultsSet {
	return compound.ResultsSet{Observations: r.Observations}
}

// ClassifierInfo records which service a run exercised. The API key itself is
// never persisted, only whether one was sent.
type ClassifierInfo struct {
	BaseURL       string `json:"base_url"`
	Authenticated bool   `json:"authenticated"`
}

// TaxonomyInfo pins the taxonomy a run was built from, so two runs can be
// checked for comparable ground truth.
type TaxonomyInfo struct {
	Path      string `json:"path"`
	SHA256    string `json:"sha256"`
	Compounds int    `json:"compounds"`
}

// RunSummary aggregates the headline counts and rates of a run.
type RunSummary struct {
	CompoundsTotal   int     `json:"compounds_total"`
	CompoundsTested  int     `json:"compounds_tested"`
	CompoundsSkipped int     `json:"compounds_skipped"`
	CompoundsErrored int     `json:"compounds_errored"`
	LookupsOmitted   int     `json:"lookups_omitted"`
	Accuracy         float64 `json:"accuracy"`
	F1               float64 `json:"f1_score"`
	DurationSeconds  float64 `json:"duration_seconds"`
}
