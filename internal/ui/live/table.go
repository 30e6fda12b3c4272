package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the compound table layout for a standard terminal.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Compound", Width: 28},
		{Title: "Category", Width: 10},
		{Title: "Sched", Width: 5},
		{Title: "Status", Width: 24},
		{Title: "Elapsed", Width: 8},
	}
}

// columnsForWidth widens the compound and status columns on wide terminals.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	extra := width - 86
	if extra <= 0 {
		return columns
	}
	columns[1].Width += extra / 2
	columns[4].Width += extra - extra/2
	return columns
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			formatCompoundName(row.Name),
			formatCategory(row.Category),
			formatTier(row.Tier),
			formatStatus(row, noColor),
			formatRowDuration(row, now),
		})
	}
	return rows
}
