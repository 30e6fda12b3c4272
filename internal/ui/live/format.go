package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"chembench/internal/compound"
	"chembench/internal/runner"
)

// formatCompoundName truncates compound names for display.
func formatCompoundName(name string) string {
	normalized := strings.Join(strings.Fields(name), " ")
	const limit = 28
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// formatIndex formats a compound index.
func formatIndex(index int) string {
	return pad2(index + 1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatCategory renders a short category label.
func formatCategory(category compound.Category) string {
	switch category {
	case compound.CategoryRegulated:
		return "regulated"
	case compound.CategoryApproved:
		return "approved"
	case compound.CategoryNegativeControl:
		return "control"
	default:
		return string(category)
	}
}

// formatTier renders the expected schedule column.
func formatTier(tier string) string {
	if tier == "" {
		return "-"
	}
	return tier
}

// formatStatus renders a status string for a row.
func formatStatus(row CompoundRow, noColor bool) string {
	label := statusLabel(row.Status)
	switch row.Status {
	case runner.CompoundTruePositive, runner.CompoundFalsePositive:
		if row.Detected != "" {
			label = label + " (" + row.Detected + ")"
		}
	case runner.CompoundError:
		if row.Error != "" {
			label = label + ": " + formatCompoundName(row.Error)
		}
	}
	return stylizeStatus(label, row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status runner.CompoundEventType) string {
	switch status {
	case runner.CompoundQueued:
		return "queued"
	case runner.CompoundFetching:
		return "fetching"
	case runner.CompoundResolved:
		return "resolved"
	case runner.CompoundOmitted:
		return "omitted"
	case runner.CompoundSkipped:
		return "skipped"
	case runner.CompoundClassifying:
		return "classifying"
	case runner.CompoundTruePositive:
		return "detected"
	case runner.CompoundFalseNegative:
		return "missed"
	case runner.CompoundTrueNegative:
		return "clear"
	case runner.CompoundFalsePositive:
		return "false alarm"
	case runner.CompoundError:
		return "error"
	default:
		return string(status)
	}
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row CompoundRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.CompoundEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.CompoundEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.CompoundTruePositive, runner.CompoundTrueNegative:
		color = lipgloss.Color("42")
	case runner.CompoundFalsePositive:
		color = lipgloss.Color("220")
	case runner.CompoundFalseNegative, runner.CompoundError:
		color = lipgloss.Color("196")
	case runner.CompoundFetching:
		color = lipgloss.Color("39")
	case runner.CompoundClassifying:
		color = lipgloss.Color("33")
	case runner.CompoundQueued,
		runner.CompoundResolved,
		runner.CompoundOmitted,
		runner.CompoundSkipped:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
