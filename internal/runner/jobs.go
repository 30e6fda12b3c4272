package runner

import (
	"context"

	"chembench/internal/compound"
)

// classifyJob is one record queued for classification. index is the record's
// ground-truth position, used for observer events; slot is the record's
// position among the validatable records and decides where its observation
// lands.
type classifyJob struct {
	slot   int
	index  int
	record compound.Record
}

// classifyJobResult carries one finished observation back to the collector.
type classifyJobResult struct {
	slot        int
	observation compound.Observation
}

// runClassifyJobs classifies the queued records with a bounded pool of
// workers and reassembles the observations into slot order, so the output
// lines up with the ground truth no matter which worker finishes first.
func runClassifyJobs(ctx context.Context, jobs []classifyJob, classify Classify, workers int, observer *compoundObserver) []compound.Observation {
	if len(jobs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan classifyJob, len(jobs))
	resultCh := make(chan classifyJobResult, len(jobs))
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	for i := 0; i < workers; i++ {
		go func() {
			for job := range jobCh {
				resultCh <- classifyJobResult{slot: job.slot, observation: classifyOne(ctx, job, classify, observer)}
			}
		}()
	}

	observations := make([]compound.Observation, len(jobs))
	for i := 0; i < len(jobs); i++ {
		jobResult := <-resultCh
		observations[jobResult.slot] = jobResult.observation
	}
	return observations
}

// classifyOne runs a single classification call and maps its outcome onto an
// observation, emitting progress events along the way.
func classifyOne(ctx context.Context, job classifyJob, classify Classify, observer *compoundObserver) compound.Observation {
	observer.EmitRecord(job.index, job.record, compoundEventOptions{EventType: CompoundClassifying})

	var observation compound.Observation
	verdict, err := classify(ctx, job.record.StructureID)
	if err != nil {
		observation = errorObservation(job.record, err)
	} else {
		observation = buildObservation(job.record, verdict)
	}

	observer.EmitRecord(job.index, job.record, compoundEventOptions{
		EventType: outcomeEvent(observation),
		Detected:  observation.DetectedTier,
		Error:     observation.Error,
	})
	return observation
}
