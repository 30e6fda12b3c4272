package live

import "chembench/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventPhaseStart signals the start of a fetch or validate phase.
	EventPhaseStart
	// EventCompound delivers a compound status update.
	EventCompound
	// EventPhaseEnd signals phase completion.
	EventPhaseEnd
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	Compounds int
	Phase     runner.Phase
	Total     int
	Compound  runner.CompoundEvent
	Summary   runner.RunSummary
}
