package cli

import (
	"fmt"
	"io"
	"sync"

	"chembench/internal/runner"
)

// plainObserver logs run progress as plain lines for non-interactive output.
// Quiet mode reports phases, omissions, and errors; verbose mode adds one
// line per compound outcome. Compound events arrive concurrently from the
// validation workers.
type plainObserver struct {
	out     io.Writer
	verbose bool

	mu sync.Mutex
}

func (o *plainObserver) OnRunStart(runID string, compounds int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, "Run %s: %d compounds\n", runID, compounds)
}

func (o *plainObserver) OnPhaseStart(phase runner.Phase, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch phase {
	case runner.PhaseFetch:
		fmt.Fprintf(o.out, "Fetching structures for %d compounds...\n", total)
	case runner.PhaseValidate:
		fmt.Fprintf(o.out, "Classifying %d compounds...\n", total)
	}
}

func (o *plainObserver) OnCompoundEvent(event runner.CompoundEvent) {
	line := plainEventLine(event, o.verbose)
	if line == "" {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, "  %s\n", line)
}

func (o *plainObserver) OnPhaseEnd(phase runner.Phase) {}

func (o *plainObserver) OnRunEnd(results runner.Results) {}

// plainEventLine renders a compound event, or "" for events plain mode does
// not report.
func plainEventLine(event runner.CompoundEvent, verbose bool) string {
	switch event.Type {
	case runner.CompoundOmitted:
		if event.Error != "" {
			return fmt.Sprintf("%s omitted (%s)", event.Name, event.Error)
		}
		return fmt.Sprintf("%s omitted", event.Name)
	case runner.CompoundError:
		return fmt.Sprintf("%s error: %s", event.Name, event.Error)
	}
	if !verbose {
		return ""
	}
	switch event.Type {
	case runner.CompoundResolved:
		return fmt.Sprintf("%s resolved", event.Name)
	case runner.CompoundSkipped:
		return fmt.Sprintf("%s skipped (no structure)", event.Name)
	case runner.CompoundTruePositive:
		if event.Detected != "" {
			return fmt.Sprintf("%s detected (schedule %s)", event.Name, event.Detected)
		}
		return fmt.Sprintf("%s detected", event.Name)
	case runner.CompoundFalseNegative:
		return fmt.Sprintf("%s missed", event.Name)
	case runner.CompoundTrueNegative:
		return fmt.Sprintf("%s clear", event.Name)
	case runner.CompoundFalsePositive:
		return fmt.Sprintf("%s false alarm", event.Name)
	default:
		return ""
	}
}
