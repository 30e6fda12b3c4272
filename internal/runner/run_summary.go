package runner

import (
	"time"

	"chembench/internal/compound"
	"chembench/internal/metrics"
)

// summarize derives the headline summary of a run. taxonomySize is the number
// of compound names the taxonomy listed, before lookup omissions.
func summarize(taxonomySize int, truth compound.GroundTruthSet, observations []compound.Observation, report metrics.Report, startedAt, finishedAt time.Time) RunSummary {
	summary := RunSummary{
		CompoundsTotal:  truth.Len(),
		CompoundsTested: report.TotalTested,
		LookupsOmitted:  taxonomySize - truth.Len(),
		Accuracy:        report.Accuracy,
		F1:              report.F1,
		DurationSeconds: finishedAt.Sub(startedAt).Seconds(),
	}
	for _, record := range truth.Records {
		if !record.HasStructure() {
			summary.CompoundsSkipped++
		}
	}
	for _, observation := range observations {
		if observation.Failed() {
			summary.CompoundsErrored++
		}
	}
	return summary
}
