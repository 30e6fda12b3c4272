package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"chembench/internal/spec"
)

// Pacer delays calls so an upstream request budget is respected.
type Pacer interface {
	// Wait blocks until the next call is allowed or the context is done.
	Wait(ctx context.Context) error
}

// NoopPacer never delays.
var NoopPacer Pacer = noopPacer{}

type noopPacer struct{}

func (noopPacer) Wait(_ context.Context) error { return nil }

// tokenPacer paces calls with a token bucket.
type tokenPacer struct {
	limiter *rate.Limiter
}

func (p tokenPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NewPacer builds a pacer allowing perSecond calls with a burst of one.
// Burst one keeps calls evenly spaced, which is what public-API rate policies
// ask for. A non-positive rate yields the noop pacer.
func NewPacer(perSecond float64) Pacer {
	if perSecond <= 0 {
		return NoopPacer
	}
	return tokenPacer{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Pacers bundles the per-provider pacers for a benchmark run.
type Pacers struct {
	GroundTruth Pacer
	Classifier  Pacer
}

// BuildPacers constructs the pacers a config asks for.
func BuildPacers(cfg spec.Config) Pacers {
	return Pacers{
		GroundTruth: NewPacer(cfg.GroundTruth.RequestsPerSecond),
		Classifier:  NewPacer(cfg.Classifier.RequestsPerSecond),
	}
}
