package report

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"chembench/internal/metrics"
	"chembench/internal/runner"
	"chembench/internal/spec"
)

// RunReport renders the HTML report page for one run.
func RunReport(results runner.Results, targets spec.TargetsConfig, generatedAt time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		writeReportPage(p, results, targets, generatedAt)
		return p.err
	})
}

// pageWriter holds the first write error so the section writers stay linear.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

const reportStyles = `body{font-family:sans-serif;margin:2rem auto;max-width:60rem;padding:0 1rem}` +
	`table{border-collapse:collapse;margin:1rem 0}` +
	`th,td{border:1px solid #ccc;padding:0.4rem 0.8rem;text-align:left}` +
	`th{background:#f4f4f4}` +
	`.meta{color:#555}` +
	`.pass{color:#1a7f37;font-weight:bold}` +
	`.fail{color:#cf222e;font-weight:bold}`

func writeReportPage(p *pageWriter, results runner.Results, targets spec.TargetsConfig, generatedAt time.Time) {
	p.printf("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	p.printf("<title>Regulatory Detection Benchmark %s</title>\n", html.EscapeString(results.RunID))
	p.printf("<style>%s</style>\n</head>\n<body>\n", reportStyles)
	p.printf("<h1>Regulatory Detection Benchmark</h1>\n")
	p.printf("<p class=\"meta\">Run %s &middot; Generated %s &middot; Classifier %s</p>\n",
		html.EscapeString(results.RunID),
		generatedAt.UTC().Format("2006-01-02 15:04:05"),
		html.EscapeString(results.Classifier.BaseURL))

	writeMetricsTable(p, results, targets)
	writeConfusionMatrix(p, results)
	writeScheduleTable(p, results)
	writeFindingTables(p, results)
	p.printf("</body>\n</html>\n")
}

func writeMetricsTable(p *pageWriter, results runner.Results, targets spec.TargetsConfig) {
	p.printf("<h2>Key Metrics</h2>\n<table>\n<tr><th>Metric</th><th>Value</th><th>Target</th><th>Status</th></tr>\n")
	for _, row := range metricRows(results.Metrics, targets) {
		label := row.name
		if row.note != "" {
			label += " " + row.note
		}
		p.printf("<tr><td>%s</td><td>%s</td><td>%s</td><td class=%q>%s</td></tr>\n",
			html.EscapeString(label), row.value, row.target, strings.ToLower(row.status), row.status)
	}
	p.printf("</table>\n")
}

func writeConfusionMatrix(p *pageWriter, results runner.Results) {
	report := results.Metrics
	p.printf("<h2>Confusion Matrix</h2>\n<table>\n")
	p.printf("<tr><th></th><th>Predicted Controlled</th><th>Predicted Safe</th></tr>\n")
	p.printf("<tr><th>Actually Controlled</th><td>%d (TP)</td><td>%d (FN)</td></tr>\n", report.TruePositives, report.FalseNegatives)
	p.printf("<tr><th>Actually Safe</th><td>%d (FP)</td><td>%d (TN)</td></tr>\n", report.FalsePositives, report.TrueNegatives)
	p.printf("</table>\n")
}

func writeScheduleTable(p *pageWriter, results runner.Results) {
	breakdown := metrics.ScheduleBreakdown(results.ResultsSet())
	if len(breakdown) == 0 {
		return
	}
	p.printf("<h2>Results by Schedule</h2>\n<table>\n<tr><th>Schedule</th><th>Tested</th><th>Detected</th><th>Rate</th></tr>\n")
	for _, stats := range breakdown {
		p.printf("<tr><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>\n",
			html.EscapeString(stats.Schedule), stats.Tested, stats.Detected, formatPercent(stats.Rate()))
	}
	p.printf("</table>\n")
}

func writeFindingTables(p *pageWriter, results runner.Results) {
	resultsSet := results.ResultsSet()

	if falsePositives := metrics.FalsePositives(resultsSet); len(falsePositives) > 0 {
		p.printf("<h2>False Positives</h2>\n<table>\n<tr><th>Compound</th><th>Category</th><th>Flags</th></tr>\n")
		for _, observation := range falsePositives {
			p.printf("<tr><td>%s</td><td>%s</td><td>%d</td></tr>\n",
				html.EscapeString(observation.Name), html.EscapeString(string(observation.Category)), observation.FlagCount)
		}
		p.printf("</table>\n")
	}

	if falseNegatives := metrics.FalseNegatives(resultsSet); len(falseNegatives) > 0 {
		p.printf("<h2>False Negatives</h2>\n<table>\n<tr><th>Compound</th><th>Expected Schedule</th></tr>\n")
		for _, observation := range falseNegatives {
			p.printf("<tr><td>%s</td><td>Schedule %s</td></tr>\n",
				html.EscapeString(observation.Name), html.EscapeString(observation.ExpectedTier))
		}
		p.printf("</table>\n")
	}

	if failures := metrics.Failures(resultsSet); len(failures) > 0 {
		p.printf("<h2>Errors</h2>\n<table>\n<tr><th>Compound</th><th>Error</th></tr>\n")
		for _, observation := range failures {
			p.printf("<tr><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(observation.Name), html.EscapeString(observation.Error))
		}
		p.printf("</table>\n")
	}
}
