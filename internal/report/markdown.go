package report

import (
	"fmt"
	"strings"
	"time"

	"chembench/internal/metrics"
	"chembench/internal/runner"
	"chembench/internal/spec"
)

// metricRow is one line of the key-metrics table.
type metricRow struct {
	name   string
	note   string
	value  string
	target string
	status string
}

// metricRows assembles the key-metrics table in report order.
func metricRows(report metrics.Report, targets spec.TargetsConfig) []metricRow {
	return []metricRow{
		{"Sensitivity", "(detect controlled)", formatPercent(report.Sensitivity), formatTargetPercent(targets.Sensitivity), statusFor(report.Sensitivity, targets.Sensitivity)},
		{"Specificity", "(avoid false alarms)", formatPercent(report.Specificity), formatTargetPercent(targets.Specificity), statusFor(report.Specificity, targets.Specificity)},
		{"Precision", "", formatPercent(report.Precision), formatTargetPercent(targets.Precision), statusFor(report.Precision, targets.Precision)},
		{"F1 Score", "", formatScore(report.F1), formatTargetScore(targets.F1), statusFor(report.F1, targets.F1)},
		{"Overall Accuracy", "", formatPercent(report.Accuracy), formatTargetPercent(targets.Accuracy), statusFor(report.Accuracy, targets.Accuracy)},
		{"Schedule Accuracy", "", formatPercent(report.ScheduleAccuracy), formatTargetPercent(targets.ScheduleAccuracy), statusFor(report.ScheduleAccuracy, targets.ScheduleAccuracy)},
		{"Whitelist Coverage", "", formatPercent(report.WhitelistRate), formatTargetPercent(targets.WhitelistRate), statusFor(report.WhitelistRate, targets.WhitelistRate)},
	}
}

// Markdown renders the benchmark report for one run.
func Markdown(results runner.Results, targets spec.TargetsConfig, generatedAt time.Time) string {
	report := results.Metrics
	resultsSet := results.ResultsSet()

	var b strings.Builder
	b.WriteString("# Regulatory Detection Benchmark\n\n")
	fmt.Fprintf(&b, "**Run:** %s\n", results.RunID)
	fmt.Fprintf(&b, "**Generated:** %s\n", generatedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Classifier:** %s\n", results.Classifier.BaseURL)
	b.WriteString("**Dataset:** DEA Controlled Substances + FDA Approved Drugs\n\n")
	b.WriteString("---\n\n")

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "The classifier was validated against %d compounds:\n", report.TotalTested)
	fmt.Fprintf(&b, "- **%d** DEA controlled substances (Schedule I-V)\n", report.RegulatedTested)
	fmt.Fprintf(&b, "- **%d** approved non-controlled drugs and negative controls\n\n", report.NonRegulatedTested)
	b.WriteString("---\n\n")

	b.WriteString("## Key Metrics\n\n")
	b.WriteString("| Metric | Value | Target | Status |\n")
	b.WriteString("|--------|-------|--------|--------|\n")
	for _, row := range metricRows(report, targets) {
		label := "**" + row.name + "**"
		if row.note != "" {
			label += " " + row.note
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", label, row.value, row.target, row.status)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## Confusion Matrix\n\n")
	b.WriteString("|  | Predicted Controlled | Predicted Safe |\n")
	b.WriteString("|--|----------------------|----------------|\n")
	fmt.Fprintf(&b, "| **Actually Controlled** | %d (TP) | %d (FN) |\n", report.TruePositives, report.FalseNegatives)
	fmt.Fprintf(&b, "| **Actually Safe** | %d (FP) | %d (TN) |\n\n", report.FalsePositives, report.TrueNegatives)
	b.WriteString("---\n\n")

	b.WriteString("## Detailed Results by Schedule\n\n")
	for _, stats := range metrics.ScheduleBreakdown(resultsSet) {
		fmt.Fprintf(&b, "### Schedule %s\n", stats.Schedule)
		fmt.Fprintf(&b, "- Tested: %d compounds\n", stats.Tested)
		fmt.Fprintf(&b, "- Detected: %d (%s)\n\n", stats.Detected, formatPercent(stats.Rate()))
	}

	if falsePositives := metrics.FalsePositives(resultsSet); len(falsePositives) > 0 {
		b.WriteString("## False Positives (Flagged but Not Controlled)\n\n")
		b.WriteString("| Compound | Category | Flags |\n")
		b.WriteString("|----------|----------|-------|\n")
		for _, observation := range falsePositives {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", observation.Name, observation.Category, observation.FlagCount)
		}
		b.WriteString("\n")
	}

	if falseNegatives := metrics.FalseNegatives(resultsSet); len(falseNegatives) > 0 {
		b.WriteString("## False Negatives (Missed Controlled Substances)\n\n")
		b.WriteString("| Compound | Expected Schedule |\n")
		b.WriteString("|----------|-------------------|\n")
		for _, observation := range falseNegatives {
			fmt.Fprintf(&b, "| %s | Schedule %s |\n", observation.Name, observation.ExpectedTier)
		}
		b.WriteString("\n")
	}

	if failures := metrics.Failures(resultsSet); len(failures) > 0 {
		b.WriteString("## Errors\n\n")
		b.WriteString("| Compound | Error |\n")
		b.WriteString("|----------|-------|\n")
		for _, observation := range failures {
			fmt.Fprintf(&b, "| %s | %s |\n", observation.Name, observation.Error)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n## Methodology\n\n")
	b.WriteString("### Data Sources\n")
	b.WriteString("- **DEA Controlled Substances:** Official DEA schedules (deadiversion.usdoj.gov)\n")
	b.WriteString("- **Structure Lookup:** PubChem REST API\n")
	b.WriteString("- **Approved Drugs:** FDA approved drug list\n\n")
	b.WriteString("### Validation Process\n")
	b.WriteString("1. Fetched canonical SMILES for every compound from PubChem\n")
	b.WriteString("2. Submitted each SMILES to the classifier's `get_molecule_profile` endpoint\n")
	b.WriteString("3. Compared the regulated verdict against ground truth\n")
	b.WriteString("4. Verified schedule classification accuracy\n\n")
	b.WriteString("### Definitions\n")
	b.WriteString("- **Sensitivity:** Proportion of controlled substances correctly detected\n")
	b.WriteString("- **Specificity:** Proportion of safe compounds correctly cleared\n")
	b.WriteString("- **Schedule Accuracy:** Correct DEA schedule among detected substances\n\n")
	b.WriteString("---\n\n## Conclusion\n\n")

	strength := "acceptable"
	if report.F1 > 0.9 {
		strength = "strong"
	}
	fmt.Fprintf(&b, "The classifier demonstrates %s regulatory detection capabilities with:\n", strength)
	fmt.Fprintf(&b, "- %s sensitivity for controlled substance detection\n", formatPercent(report.Sensitivity))
	fmt.Fprintf(&b, "- %s specificity (low false alarm rate)\n", formatPercent(report.Specificity))
	fmt.Fprintf(&b, "- %s accuracy in schedule classification\n", formatPercent(report.ScheduleAccuracy))
	return b.String()
}
