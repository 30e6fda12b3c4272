package live

import (
	"time"

	"chembench/internal/compound"
	"chembench/internal/runner"
)

// CompoundRow holds UI state for a single compound. Detected carries the
// schedule the classifier reported, when it reported one.
type CompoundRow struct {
	Index      int
	Name       string
	Category   compound.Category
	Tier       string
	Status     runner.CompoundEventType
	Detected   string
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued        int
	Fetching      int
	Classifying   int
	Done          int
	Resolved      int
	Omitted       int
	Skipped       int
	TruePositive  int
	FalseNegative int
	TrueNegative  int
	FalsePositive int
	Errors        int
}

// State captures the live UI state for a benchmark run.
type State struct {
	RunID      string
	Compounds  int
	Phase      runner.Phase
	PhaseTotal int
	StartedAt  time.Time
	LastEvent  string
	Rows       []CompoundRow
	Counts     StatusCounts
	Finished   bool
	Summary    runner.RunSummary
}
