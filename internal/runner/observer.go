package runner

import (
	"time"

	"chembench/internal/compound"
)

// Phase identifies a stage of a benchmark run.
type Phase string

const (
	// PhaseFetch covers ground-truth structure lookups.
	PhaseFetch Phase = "fetch"
	// PhaseValidate covers classification of the ground-truth set.
	PhaseValidate Phase = "validate"
)

// CompoundEventType identifies the kind of compound status update.
type CompoundEventType string

const (
	// CompoundQueued marks a compound known to the run but not yet processed.
	CompoundQueued CompoundEventType = "queued"
	// CompoundFetching marks a structure lookup in flight.
	CompoundFetching CompoundEventType = "fetching"
	// CompoundResolved marks a successful structure lookup.
	CompoundResolved CompoundEventType = "resolved"
	// CompoundOmitted marks a compound dropped from the ground truth after a
	// failed lookup.
	CompoundOmitted CompoundEventType = "omitted"
	// CompoundSkipped marks a record without a structure, excluded from
	// classification.
	CompoundSkipped CompoundEventType = "skipped"
	// CompoundClassifying marks a classification call in flight.
	CompoundClassifying CompoundEventType = "classifying"
	// CompoundTruePositive marks a regulated compound the service flagged.
	CompoundTruePositive CompoundEventType = "true_positive"
	// CompoundFalseNegative marks a regulated compound the service missed.
	CompoundFalseNegative CompoundEventType = "false_negative"
	// CompoundTrueNegative marks a non-regulated compound the service cleared.
	CompoundTrueNegative CompoundEventType = "true_negative"
	// CompoundFalsePositive marks a non-regulated compound the service flagged.
	CompoundFalsePositive CompoundEventType = "false_positive"
	// CompoundError marks a classification failure.
	CompoundError CompoundEventType = "error"
)

// CompoundEvent carries a single status update for one compound.
type CompoundEvent struct {
	Phase     Phase
	Index     int
	Name      string
	Category  compound.Category
	Tier      string
	Type      CompoundEventType
	Detected  string
	Error     string
	EmittedAt time.Time
}

// RunObserver receives lifecycle events during a run. Implementations must
// tolerate concurrent OnCompoundEvent calls during the validation phase.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, compounds int)
	// OnPhaseStart signals the start of a phase with its item count.
	OnPhaseStart(phase Phase, total int)
	// OnCompoundEvent delivers a compound status update.
	OnCompoundEvent(event CompoundEvent)
	// OnPhaseEnd signals completion of a phase.
	OnPhaseEnd(phase Phase)
	// OnRunEnd signals run completion with the final results.
	OnRunEnd(results Results)
}
