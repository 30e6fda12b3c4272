package report

import (
	"chembench/internal/metrics"
	"chembench/internal/runner"
)

// MetricDelta is the change in one headline metric between two runs.
type MetricDelta struct {
	Name  string  `json:"name"`
	Base  float64 `json:"base"`
	Head  float64 `json:"head"`
	Delta float64 `json:"delta"`
}

// Compare computes per-metric deltas between a base and a head run, in
// report order.
func Compare(base, head runner.Results) []MetricDelta {
	picks := []struct {
		name string
		pick func(metrics.Report) float64
	}{
		{"sensitivity", func(r metrics.Report) float64 { return r.Sensitivity }},
		{"specificity", func(r metrics.Report) float64 { return r.Specificity }},
		{"precision", func(r metrics.Report) float64 { return r.Precision }},
		{"f1_score", func(r metrics.Report) float64 { return r.F1 }},
		{"accuracy", func(r metrics.Report) float64 { return r.Accuracy }},
		{"schedule_accuracy", func(r metrics.Report) float64 { return r.ScheduleAccuracy }},
		{"whitelist_rate", func(r metrics.Report) float64 { return r.WhitelistRate }},
	}

	deltas := make([]MetricDelta, 0, len(picks))
	for _, entry := range picks {
		baseValue := entry.pick(base.Metrics)
		headValue := entry.pick(head.Metrics)
		deltas = append(deltas, MetricDelta{
			Name:  entry.name,
			Base:  baseValue,
			Head:  headValue,
			Delta: headValue - baseValue,
		})
	}
	return deltas
}
