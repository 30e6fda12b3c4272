package report

import "fmt"

// formatPercent renders a rate as a percentage with one decimal.
func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// formatScore renders a unit-interval score with three decimals.
func formatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}

// formatTargetPercent renders a target rate as a lower bound.
func formatTargetPercent(target float64) string {
	return fmt.Sprintf(">%.1f%%", target*100)
}

// formatTargetScore renders a target score as a lower bound.
func formatTargetScore(target float64) string {
	return fmt.Sprintf(">%.3f", target)
}

// statusFor reports whether a metric meets its target.
func statusFor(value, target float64) string {
	if value >= target {
		return "PASS"
	}
	return "FAIL"
}
