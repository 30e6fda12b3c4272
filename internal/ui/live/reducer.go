package live

import (
	"fmt"

	"chembench/internal/runner"
)

// Reduce applies a compound event to the UI state.
func Reduce(state State, event runner.CompoundEvent) State {
	state = ensureRow(state, event)
	state = applyCompoundEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.CompoundEvent) State {
	if event.Index < 0 {
		return state
	}
	if event.Index < len(state.Rows) {
		return state
	}
	rows := make([]CompoundRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = CompoundRow{Index: i, Status: runner.CompoundQueued}
	}
	state.Rows = rows
	return state
}

// applyCompoundEvent updates a row with the given event.
func applyCompoundEvent(state State, event runner.CompoundEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Name == "" {
		row.Name = event.Name
	}
	if row.Category == "" {
		row.Category = event.Category
	}
	if row.Tier == "" {
		row.Tier = event.Tier
	}
	row.Status = event.Type
	switch event.Type {
	case runner.CompoundFetching, runner.CompoundClassifying:
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	}
	if isTerminalStatus(event.Type) {
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
		row.Detected = event.Detected
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// isTerminalStatus reports whether a status is final for its phase.
func isTerminalStatus(status runner.CompoundEventType) bool {
	switch status {
	case runner.CompoundResolved,
		runner.CompoundOmitted,
		runner.CompoundSkipped,
		runner.CompoundTruePositive,
		runner.CompoundFalseNegative,
		runner.CompoundTrueNegative,
		runner.CompoundFalsePositive,
		runner.CompoundError:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []CompoundRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.CompoundQueued:
			counts.Queued++
		case runner.CompoundFetching:
			counts.Fetching++
		case runner.CompoundClassifying:
			counts.Classifying++
		case runner.CompoundResolved:
			counts.Done++
			counts.Resolved++
		case runner.CompoundOmitted:
			counts.Done++
			counts.Omitted++
		case runner.CompoundSkipped:
			counts.Done++
			counts.Skipped++
		case runner.CompoundTruePositive:
			counts.Done++
			counts.TruePositive++
		case runner.CompoundFalseNegative:
			counts.Done++
			counts.FalseNegative++
		case runner.CompoundTrueNegative:
			counts.Done++
			counts.TrueNegative++
		case runner.CompoundFalsePositive:
			counts.Done++
			counts.FalsePositive++
		case runner.CompoundError:
			counts.Done++
			counts.Errors++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.CompoundEvent) string {
	switch event.Type {
	case runner.CompoundOmitted:
		if event.Error != "" {
			return fmt.Sprintf("%s omitted (%s)", event.Name, event.Error)
		}
		return fmt.Sprintf("%s omitted", event.Name)
	case runner.CompoundSkipped:
		return fmt.Sprintf("%s skipped (no structure)", event.Name)
	case runner.CompoundTruePositive:
		if event.Detected != "" {
			return fmt.Sprintf("%s detected (schedule %s)", event.Name, event.Detected)
		}
		return fmt.Sprintf("%s detected", event.Name)
	case runner.CompoundFalseNegative:
		return fmt.Sprintf("%s missed", event.Name)
	case runner.CompoundFalsePositive:
		return fmt.Sprintf("%s false alarm", event.Name)
	case runner.CompoundError:
		return fmt.Sprintf("%s error: %s", event.Name, event.Error)
	}
	return ""
}
