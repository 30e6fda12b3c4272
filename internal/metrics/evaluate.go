package metrics

import "chembench/internal/compound"

// Report is the computed accuracy picture for one results set. It is a pure
// function of the results: recomputing over the same set yields an identical
// report.
type Report struct {
	TotalTested        int `json:"total_tested"`
	RegulatedTested    int `json:"regulated_tested"`
	NonRegulatedTested int `json:"non_regulated_tested"`

	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`

	Sensitivity      float64 `json:"sensitivity"`
	Specificity      float64 `json:"specificity"`
	Precision        float64 `json:"precision"`
	F1               float64 `json:"f1_score"`
	Accuracy         float64 `json:"accuracy"`
	ScheduleAccuracy float64 `json:"schedule_accuracy"`
	WhitelistRate    float64 `json:"whitelist_rate"`
}

// Evaluate computes a Report from a results set. It never fails: observations
// carrying an error are excluded from every count, and any rate whose
// denominator is zero is reported as 0.
func Evaluate(results compound.ResultsSet) Report {
	valid := results.Valid()

	var report Report
	report.TotalTested = len(valid)

	scheduleMatches := 0
	approvedTotal := 0
	approvedWhitelisted := 0

	for _, observation := range valid {
		if observation.ExpectedRegulated {
			report.RegulatedTested++
			if observation.DetectedRegulated {
				report.TruePositives++
				if observation.DetectedTier != "" && observation.DetectedTier == observation.ExpectedTier {
					scheduleMatches++
				}
			} else {
				report.FalseNegatives++
			}
		} else {
			report.NonRegulatedTested++
			if observation.DetectedRegulated {
				report.FalsePositives++
			} else {
				report.TrueNegatives++
			}
		}

		if observation.Category == compound.CategoryApproved {
			approvedTotal++
			if observation.DetectedWhitelisted {
				approvedWhitelisted++
			}
		}
	}

	report.Sensitivity = ratio(report.TruePositives, report.TruePositives+report.FalseNegatives)
	report.Specificity = ratio(report.TrueNegatives, report.TrueNegatives+report.FalsePositives)
	report.Precision = ratio(report.TruePositives, report.TruePositives+report.FalsePositives)
	if sum := report.Precision + report.Sensitivity; sum > 0 {
		report.F1 = 2 * report.Precision * report.Sensitivity / sum
	}
	report.Accuracy = ratio(
		report.TruePositives+report.TrueNegatives,
		report.TruePositives+report.TrueNegatives+report.FalsePositives+report.FalseNegatives,
	)
	report.ScheduleAccuracy = ratio(scheduleMatches, report.TruePositives)
	report.WhitelistRate = ratio(approvedWhitelisted, approvedTotal)
	return report
}

// ratio divides counts with a zero-denominator guard.
func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
