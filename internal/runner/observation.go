package runner

import (
	"chembench/internal/compound"
	"chembench/internal/faves"
)

// buildObservation joins a ground-truth record with the service's verdict.
// Detection uses the union rule: direct listing or scaffold similarity both
// count as regulated.
func buildObservation(record compound.Record, verdict faves.Verdict) compound.Observation {
	return compound.Observation{
		Name:              record.Name,
		StructureID:       record.StructureID,
		Category:          record.Category,
		ExpectedRegulated: record.ExpectedRegulated,
		ExpectedTier:      record.Tier,

		DetectedRegulated:   verdict.Regulated(),
		DetectedTier:        verdict.Schedule,
		DetectedWhitelisted: verdict.Whitelisted,
		Status:              verdict.Status,
		ScaffoldMatch:       verdict.ScaffoldMatch,
		BannedElsewhere:     verdict.FDABanned,
		TreatyScheduled:     verdict.CWCScheduled,
		FlagCount:           verdict.FlagCount,
		InDatabase:          verdict.InDatabase,
		Source:              verdict.Source,
	}
}

// errorObservation records a classification failure. The detection fields
// stay at their zero values and the observation is excluded from metrics.
func errorObservation(record compound.Record, err error) compound.Observation {
	return compound.Observation{
		Name:              record.Name,
		StructureID:       record.StructureID,
		Category:          record.Category,
		ExpectedRegulated: record.ExpectedRegulated,
		ExpectedTier:      record.Tier,
		Error:             err.Error(),
	}
}

// outcomeEvent buckets an observation into its confusion-matrix event type.
func outcomeEvent(observation compound.Observation) CompoundEventType {
	switch {
	case observation.Failed():
		return CompoundError
	case observation.ExpectedRegulated && observation.DetectedRegulated:
		return CompoundTruePositive
	case observation.ExpectedRegulated:
		return CompoundFalseNegative
	case observation.DetectedRegulated:
		return CompoundFalsePositive
	default:
		return CompoundTrueNegative
	}
}
