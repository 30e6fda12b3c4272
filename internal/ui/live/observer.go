package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"chembench/internal/runner"
)

// Controller runs the live UI and implements runner.RunObserver.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(runID string, compounds int) {
	c.send(Event{Kind: EventRunStart, RunID: runID, Compounds: compounds})
}

// OnPhaseStart forwards phase start events to the UI.
func (c *Controller) OnPhaseStart(phase runner.Phase, total int) {
	c.send(Event{Kind: EventPhaseStart, Phase: phase, Total: total})
}

// OnCompoundEvent forwards compound status updates to the UI.
func (c *Controller) OnCompoundEvent(event runner.CompoundEvent) {
	c.send(Event{Kind: EventCompound, Compound: event})
}

// OnPhaseEnd forwards phase completion events to the UI.
func (c *Controller) OnPhaseEnd(phase runner.Phase) {
	c.send(Event{Kind: EventPhaseEnd, Phase: phase})
}

// OnRunEnd forwards run completion to the UI and closes it.
func (c *Controller) OnRunEnd(results runner.Results) {
	c.send(Event{Kind: EventRunEnd, Summary: results.Summary})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
