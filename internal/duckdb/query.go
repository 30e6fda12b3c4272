package duckdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chembench/internal/runner"
)

// ErrRunNotFound reports a run ID with no warehouse row.
var ErrRunNotFound = errors.New("run not found")

// RunRow is one warehouse run as listed for browsing and comparison.
type RunRow struct {
	RunID           string    `json:"run_id"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
	CompoundsTested int       `json:"compounds_tested"`
	Accuracy        float64   `json:"accuracy"`
	F1              float64   `json:"f1_score"`
}

// ListRuns returns all ingested runs ordered by run ID. Run IDs start with a
// UTC timestamp, so the order is chronological.
func ListRuns(ctx context.Context, db *sql.DB) ([]RunRow, error) {
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, started_at, finished_at, compounds_tested, accuracy, f1_score
		 FROM runs ORDER BY run_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var out []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.RunID, &row.StartedAt, &row.FinishedAt, &row.CompoundsTested, &row.Accuracy, &row.F1); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}

// LoadRunResults returns the full stored results document for a run.
func LoadRunResults(ctx context.Context, db *sql.DB, runID string) (runner.Results, error) {
	if db == nil {
		return runner.Results{}, errors.New("duckdb: db is nil")
	}
	var payload string
	err := db.QueryRowContext(ctx, "SELECT results FROM runs WHERE run_id = ?", runID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return runner.Results{}, fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return runner.Results{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	var results runner.Results
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		return runner.Results{}, fmt.Errorf("decode run %s: %w", runID, err)
	}
	return results, nil
}
