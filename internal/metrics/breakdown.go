package metrics

import "chembench/internal/compound"

// ScheduleStats counts detections among the regulated compounds expected at
// one schedule.
type ScheduleStats struct {
	Schedule string `json:"schedule"`
	Tested   int    `json:"tested"`
	Detected int    `json:"detected"`
}

// Rate returns the detected fraction, 0 when nothing was tested.
func (s ScheduleStats) Rate() float64 {
	return ratio(s.Detected, s.Tested)
}

// ScheduleBreakdown groups valid regulated observations by expected schedule,
// in first-seen order.
func ScheduleBreakdown(results compound.ResultsSet) []ScheduleStats {
	index := map[string]int{}
	var breakdown []ScheduleStats
	for _, observation := range results.Valid() {
		if !observation.ExpectedRegulated || observation.ExpectedTier == "" {
			continue
		}
		i, seen := index[observation.ExpectedTier]
		if !seen {
			i = len(breakdown)
			index[observation.ExpectedTier] = i
			breakdown = append(breakdown, ScheduleStats{Schedule: observation.ExpectedTier})
		}
		breakdown[i].Tested++
		if observation.DetectedRegulated {
			breakdown[i].Detected++
		}
	}
	return breakdown
}

// FalsePositives returns the valid observations flagged regulated that were
// expected clean, in set order.
func FalsePositives(results compound.ResultsSet) []compound.Observation {
	var out []compound.Observation
	for _, observation := range results.Valid() {
		if !observation.ExpectedRegulated && observation.DetectedRegulated {
			out = append(out, observation)
		}
	}
	return out
}

// FalseNegatives returns the valid observations the service missed, in set
// order.
func FalseNegatives(results compound.ResultsSet) []compound.Observation {
	var out []compound.Observation
	for _, observation := range results.Valid() {
		if observation.ExpectedRegulated && !observation.DetectedRegulated {
			out = append(out, observation)
		}
	}
	return out
}

// Failures returns the observations excluded from metrics because the
// classification call failed, in set order.
func Failures(results compound.ResultsSet) []compound.Observation {
	var out []compound.Observation
	for _, observation := range results.Observations {
		if observation.Failed() {
			out = append(out, observation)
		}
	}
	return out
}
