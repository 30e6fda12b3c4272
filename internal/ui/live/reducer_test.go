package live

import (
	"testing"
	"time"

	"chembench/internal/compound"
	"chembench/internal/runner"
	"chembench/internal/testutil"
)

// TestReduceClassificationLifecycle verifies core status transitions are recorded.
func TestReduceClassificationLifecycle(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		start := time.Now()
		state := State{}
		state = Reduce(state, event(0, runner.CompoundQueued, "", start))
		state = Reduce(state, event(0, runner.CompoundClassifying, "", start))
		done := event(0, runner.CompoundTruePositive, "", start.Add(150*time.Millisecond))
		done.Detected = "I"
		state = Reduce(state, done)

		row := state.Rows[0]
		if row.Status != runner.CompoundTruePositive {
			t.Fatalf("expected true positive status, got %s", row.Status)
		}
		if row.Detected != "I" {
			t.Fatalf("expected detected schedule I, got %q", row.Detected)
		}
		if row.FinishedAt.Sub(row.StartedAt) != 150*time.Millisecond {
			t.Fatalf("unexpected duration: %s", row.FinishedAt.Sub(row.StartedAt))
		}
		if state.Counts.TruePositive != 1 || state.Counts.Done != 1 {
			t.Fatalf("unexpected counts: %+v", state.Counts)
		}
	})
}

// TestReduceGrowsRowsToIndex verifies sparse indices create queued rows.
func TestReduceGrowsRowsToIndex(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := State{}
		state = Reduce(state, event(3, runner.CompoundClassifying, "", time.Now()))
		if len(state.Rows) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(state.Rows))
		}
		for i := 0; i < 3; i++ {
			if state.Rows[i].Status != runner.CompoundQueued {
				t.Fatalf("expected row %d queued, got %s", i, state.Rows[i].Status)
			}
		}
		if state.Counts.Queued != 3 || state.Counts.Classifying != 1 {
			t.Fatalf("unexpected counts: %+v", state.Counts)
		}
	})
}

// TestReduceFetchOutcomes verifies resolved and omitted lookups are tracked.
func TestReduceFetchOutcomes(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := State{}
		state = Reduce(state, event(0, runner.CompoundFetching, "", time.Now()))
		state = Reduce(state, event(0, runner.CompoundResolved, "", time.Now()))
		omitted := event(1, runner.CompoundOmitted, "compound not found", time.Now())
		state = Reduce(state, omitted)

		if state.Counts.Resolved != 1 || state.Counts.Omitted != 1 {
			t.Fatalf("unexpected counts: %+v", state.Counts)
		}
		if state.LastEvent != "fentanyl omitted (compound not found)" {
			t.Fatalf("unexpected last event: %q", state.LastEvent)
		}
	})
}

// TestReduceTerminalError verifies classification failures are recorded.
func TestReduceTerminalError(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := State{}
		failed := event(0, runner.CompoundError, "HTTP 503", time.Now())
		state = Reduce(state, failed)

		row := state.Rows[0]
		if row.Status != runner.CompoundError {
			t.Fatalf("expected error status, got %s", row.Status)
		}
		if row.Error != "HTTP 503" {
			t.Fatalf("expected error to be recorded, got %q", row.Error)
		}
		if state.Counts.Errors != 1 {
			t.Fatalf("unexpected counts: %+v", state.Counts)
		}
		if state.LastEvent != "fentanyl error: HTTP 503" {
			t.Fatalf("unexpected last event: %q", state.LastEvent)
		}
	})
}

// TestReduceKeepsIdentityFields verifies name and labels stick after the
// first event that carries them.
func TestReduceKeepsIdentityFields(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		state := State{}
		queued := event(0, runner.CompoundQueued, "", time.Now())
		queued.Tier = "II"
		state = Reduce(state, queued)
		later := runner.CompoundEvent{Index: 0, Type: runner.CompoundClassifying, EmittedAt: time.Now()}
		state = Reduce(state, later)

		row := state.Rows[0]
		if row.Name != "fentanyl" || row.Tier != "II" {
			t.Fatalf("identity fields lost: %+v", row)
		}
		if row.Category != compound.CategoryRegulated {
			t.Fatalf("category lost: %+v", row)
		}
	})
}

// event builds a CompoundEvent for testing.
func event(index int, kind runner.CompoundEventType, errMsg string, when time.Time) runner.CompoundEvent {
	return runner.CompoundEvent{
		Phase:     runner.PhaseValidate,
		Index:     index,
		Name:      "fentanyl",
		Category:  compound.CategoryRegulated,
		Type:      kind,
		Error:     errMsg,
		EmittedAt: when,
	}
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
