package duckdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chembench/internal/metrics"
	"chembench/internal/runner"
)

// RunKey returns the fingerprint for a results document. Two runs with the
// same key carry byte-equivalent canonical payloads.
func RunKey(results runner.Results) (string, error) {
	payload, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return FingerprintJSON(json.RawMessage(payload))
}

// IngestResults stores one run in the warehouse. Every insert is keyed on the
// run ID, so re-ingesting the same run is a no-op. The returned key is the
// stored run fingerprint, which differs from RunKey(results) when a run with
// the same ID but different content was ingested earlier.
func IngestResults(ctx context.Context, db *sql.DB, results runner.Results) (string, error) {
	if ctx == nil {
		return "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", errors.New("duckdb: db is nil")
	}
	if results.RunID == "" {
		return "", errors.New("duckdb: run id is empty")
	}
	payload, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	canonical, err := CanonicalJSON(json.RawMessage(payload))
	if err != nil {
		return "", err
	}
	key := fingerprintBytes(canonical)
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO runs (
		  run_id, run_key, started_at, finished_at, classifier_url, taxonomy_sha256,
		  compounds_total, compounds_tested, accuracy, f1_score, results, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now())
		ON CONFLICT (run_id) DO NOTHING`,
		results.RunID,
		key,
		results.StartedAt.UTC(),
		results.FinishedAt.UTC(),
		nullableString(results.Classifier.BaseURL),
		nullableString(results.Taxonomy.SHA256),
		results.Summary.CompoundsTotal,
		results.Summary.CompoundsTested,
		results.Metrics.Accuracy,
		results.Metrics.F1,
		string(canonical),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for _, observation := range results.Observations {
		if _, err := db.ExecContext(
			ctx,
			`INSERT INTO observations (
			  observation_id, run_id, name, category, expected_regulated, expected_tier,
			  detected_regulated, detected_tier, detected_whitelisted, scaffold_match,
			  flag_count, error
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (run_id, name) DO NOTHING`,
			uuid.NewString(),
			results.RunID,
			observation.Name,
			string(observation.Category),
			observation.ExpectedRegulated,
			nullableString(observation.ExpectedTier),
			observation.DetectedRegulated,
			nullableString(observation.DetectedTier),
			observation.DetectedWhitelisted,
			observation.ScaffoldMatch,
			observation.FlagCount,
			nullableString(observation.Error),
		); err != nil {
			return "", fmt.Errorf("insert observation %s: %w", observation.Name, err)
		}
	}
	for _, point := range metricPoints(results.Metrics) {
		if _, err := db.ExecContext(
			ctx,
			`INSERT INTO metric_points (point_id, run_id, metric, value)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (run_id, metric) DO NOTHING`,
			uuid.NewString(),
			results.RunID,
			point.name,
			point.value,
		); err != nil {
			return "", fmt.Errorf("insert metric %s: %w", point.name, err)
		}
	}
	storedKey, err := lookupID(ctx, db, "runs", "run_key", "run_id", results.RunID)
	if err != nil {
		return "", fmt.Errorf("lookup run key: %w", err)
	}
	return storedKey, nil
}

type metricPoint struct {
	name  string
	value float64
}

// metricPoints flattens the rate metrics of a report into named points.
func metricPoints(report metrics.Report) []metricPoint {
	return []metricPoint{
		{"sensitivity", report.Sensitivity},
		{"specificity", report.Specificity},
		{"precision", report.Precision},
		{"f1_score", report.F1},
		{"accuracy", report.Accuracy},
		{"schedule_accuracy", report.ScheduleAccuracy},
		{"whitelist_rate", report.WhitelistRate},
	}
}

// nullableString converts an optional string into a SQL argument.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
