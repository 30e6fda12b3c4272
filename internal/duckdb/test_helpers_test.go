package duckdb_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"chembench/internal/compound"
	"chembench/internal/duckdb/testing"
	"chembench/internal/metrics"
	"chembench/internal/runner"
	"chembench/internal/testutil"
)

const (
	testTimeout = 2 * time.Second
)

// openTestDB opens an in-memory DuckDB instance with the schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db := duckdbtesting.Open(t, ":memory:")
	duckdbtesting.ApplySchema(t, db)
	return db, ctx
}

// execSQL executes a statement and fails the test on error.
func execSQL(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		t.Fatalf("exec sql failed: %v", err)
	}
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}

// sampleRun builds a small but complete results document for warehouse tests:
// one true positive, one true negative, one false positive, and one failure.
func sampleRun(runID string) runner.Results {
	startedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	observations := []compound.Observation{
		{
			Name:              "heroin",
			StructureID:       "SMILES-HEROIN",
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "I",
			DetectedRegulated: true,
			DetectedTier:      "I",
			FlagCount:         3,
			InDatabase:        true,
			Source:            "dea_schedule",
		},
		{
			Name:                "aspirin",
			StructureID:         "SMILES-ASPIRIN",
			Category:            compound.CategoryApproved,
			DetectedWhitelisted: true,
			InDatabase:          true,
		},
		{
			Name:              "ibuprofen",
			StructureID:       "SMILES-IBUPROFEN",
			Category:          compound.CategoryApproved,
			DetectedRegulated: true,
			DetectedTier:      "IV",
			ScaffoldMatch:     true,
			FlagCount:         2,
		},
		{
			Name:              "cocaine",
			StructureID:       "SMILES-COCAINE",
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "II",
			Error:             "HTTP 500",
		},
	}
	records := make([]compound.Record, 0, len(observations))
	for _, observation := range observations {
		records = append(records, compound.Record{
			Name:              observation.Name,
			StructureID:       observation.StructureID,
			Category:          observation.Category,
			Tier:              observation.ExpectedTier,
			ExpectedRegulated: observation.ExpectedRegulated,
		})
	}
	report := metrics.Evaluate(compound.ResultsSet{Observations: observations})
	return runner.Results{
		RunID:      runID,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(90 * time.Second),
		Classifier: runner.ClassifierInfo{
			BaseURL:       "https://classifier.example",
			Authenticated: true,
		},
		Taxonomy: runner.TaxonomyInfo{
			Path:      "/tmp/taxonomy.yml",
			SHA256:    "0f3ad3a6",
			Compounds: len(records),
		},
		GroundTruth:  compound.GroundTruthSet{Records: records},
		Observations: observations,
		Metrics:      report,
		Summary: runner.RunSummary{
			CompoundsTotal:   len(records),
			CompoundsTested:  len(records),
			CompoundsErrored: 1,
			Accuracy:         report.Accuracy,
			F1:               report.F1,
			DurationSeconds:  90,
		},
	}
}
