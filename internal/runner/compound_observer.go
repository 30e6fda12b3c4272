package runner

import (
	"time"

	"chembench/internal/compound"
	"chembench/internal/groundtruth"
)

// compoundEventOptions carries the per-event fields of a compound update.
type compoundEventOptions struct {
	EventType CompoundEventType
	Detected  string
	Error     string
}

// compoundObserver bridges one phase of a run to a RunObserver. A nil
// observer is valid and drops every event.
type compoundObserver struct {
	observer RunObserver
	phase    Phase
	now      func() time.Time
}

// newCompoundObserver wraps a RunObserver for a single phase.
func newCompoundObserver(observer RunObserver, phase Phase, now func() time.Time) *compoundObserver {
	if observer == nil {
		return nil
	}
	return &compoundObserver{observer: observer, phase: phase, now: now}
}

// Start emits the phase start event.
func (o *compoundObserver) Start(total int) {
	if o == nil {
		return
	}
	o.observer.OnPhaseStart(o.phase, total)
}

// End emits the phase end event.
func (o *compoundObserver) End() {
	if o == nil {
		return
	}
	o.observer.OnPhaseEnd(o.phase)
}

// Emit emits one compound event with the phase and timestamp filled in.
func (o *compoundObserver) Emit(index int, name string, category compound.Category, tier string, opts compoundEventOptions) {
	if o == nil {
		return
	}
	o.observer.OnCompoundEvent(CompoundEvent{
		Phase:     o.phase,
		Index:     index,
		Name:      name,
		Category:  category,
		Tier:      tier,
		Type:      opts.EventType,
		Detected:  opts.Detected,
		Error:     opts.Error,
		EmittedAt: o.now(),
	})
}

// EmitRecord emits one event for a ground-truth record.
func (o *compoundObserver) EmitRecord(index int, record compound.Record, opts compoundEventOptions) {
	o.Emit(index, record.Name, record.Category, record.Tier, opts)
}

// fetchAdapter translates ground-truth build events into compound events.
// The build visits taxonomy entries in order, so a lookup counter recovers
// the entry index.
func (o *compoundObserver) fetchAdapter() func(groundtruth.Event) {
	if o == nil {
		return nil
	}
	index := -1
	return func(event groundtruth.Event) {
		opts := compoundEventOptions{Error: event.Error}
		switch event.Type {
		case groundtruth.EventLookup:
			index++
			opts.EventType = CompoundFetching
		case groundtruth.EventResolved:
			opts.EventType = CompoundResolved
		case groundtruth.EventOmitted:
			opts.EventType = CompoundOmitted
		default:
			return
		}
		o.Emit(index, event.Name, event.Category, event.Tier, opts)
	}
}
