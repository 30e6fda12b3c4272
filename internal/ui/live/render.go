package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.Compounds > 0 {
		line += " | Compounds: " + fmtInt(state.Compounds)
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Queued: " + fmtInt(counts.Queued) +
		" Active: " + fmtInt(counts.Fetching+counts.Classifying) +
		" Done: " + fmtInt(counts.Done) +
		" Detected: " + fmtInt(counts.TruePositive) +
		" Missed: " + fmtInt(counts.FalseNegative) +
		" Clear: " + fmtInt(counts.TrueNegative) +
		" FalseAlarm: " + fmtInt(counts.FalsePositive) +
		" Error: " + fmtInt(counts.Errors)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderPhaseLine renders the current phase line.
func renderPhaseLine(state State, noColor bool) string {
	if state.Phase == "" {
		return ""
	}
	line := "Phase: " + string(state.Phase)
	if state.PhaseTotal > 0 {
		line += " (" + fmtInt(state.Counts.Done) + "/" + fmtInt(state.PhaseTotal) + ")"
	}
	return stylize(line, noColor, lipgloss.Color("240"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
