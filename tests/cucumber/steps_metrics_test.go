//go:build cucumber

package cucumber

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"chembench/internal/compound"
	"chembench/internal/faves"
	"chembench/internal/metrics"
)

// InitializeMetricsScenario wires steps for the metrics evaluation feature.
func InitializeMetricsScenario(ctx *godog.ScenarioContext) {
	state := &metricsScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^(\d+) regulated compounds? detected as regulated$`, state.givenRegulatedDetected)
	ctx.Step(`^(\d+) regulated compounds? detected as clear$`, state.givenRegulatedMissed)
	ctx.Step(`^(\d+) non-regulated compounds? detected as clear$`, state.givenNonRegulatedClear)
	ctx.Step(`^a regulated compound flagged only by a scaffold match$`, state.givenScaffoldMatchOnly)
	ctx.Step(`^(\d+) approved compounds? detected as whitelisted$`, state.givenApprovedWhitelisted)
	ctx.Step(`^(\d+) approved compounds? without a whitelist flag$`, state.givenApprovedNotWhitelisted)
	ctx.Step(`^an observation that failed with "([^"]+)"$`, state.givenFailedObservation)
	ctx.Step(`^the results are evaluated$`, state.whenEvaluated)
	ctx.Step(`^the confusion matrix is TP (\d+), FN (\d+), TN (\d+), FP (\d+)$`, state.thenConfusionMatrix)
	ctx.Step(`^(\d+) compounds are counted as tested$`, state.thenTotalTested)
	ctx.Step(`^sensitivity is (\d+\.\d+)$`, state.thenSensitivity)
	ctx.Step(`^specificity is (\d+\.\d+)$`, state.thenSpecificity)
	ctx.Step(`^the F1 score is (\d+\.\d+)$`, state.thenF1)
	ctx.Step(`^accuracy is (\d+\.\d+)$`, state.thenAccuracy)
	ctx.Step(`^the whitelist rate is (\d+\.\d+)$`, state.thenWhitelistRate)
	ctx.Step(`^every rate is 0$`, state.thenEveryRateZero)
}

// metricsScenarioState accumulates observations and holds the evaluated report.
type metricsScenarioState struct {
	observations []compound.Observation
	report       metrics.Report
	evaluated    bool
}

func (s *metricsScenarioState) reset() {
	s.observations = nil
	s.report = metrics.Report{}
	s.evaluated = false
}

func (s *metricsScenarioState) add(n int, build func(i int) compound.Observation) {
	for i := 0; i < n; i++ {
		s.observations = append(s.observations, build(i))
	}
}

func (s *metricsScenarioState) givenRegulatedDetected(n int) error {
	s.add(n, func(i int) compound.Observation {
		return compound.Observation{
			Name:              fmt.Sprintf("regulated-hit-%d", i),
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "II",
			DetectedRegulated: true,
			DetectedTier:      "II",
		}
	})
	return nil
}

func (s *metricsScenarioState) givenRegulatedMissed(n int) error {
	s.add(n, func(i int) compound.Observation {
		return compound.Observation{
			Name:              fmt.Sprintf("regulated-miss-%d", i),
			Category:          compound.CategoryRegulated,
			ExpectedRegulated: true,
			ExpectedTier:      "II",
		}
	})
	return nil
}

func (s *metricsScenarioState) givenNonRegulatedClear(n int) error {
	s.add(n, func(i int) compound.Observation {
		return compound.Observation{
			Name:     fmt.Sprintf("control-%d", i),
			Category: compound.CategoryNegativeControl,
		}
	})
	return nil
}

// givenScaffoldMatchOnly derives detection through the verdict union so the
// scenario exercises the same rule production runs use.
func (s *metricsScenarioState) givenScaffoldMatchOnly() error {
	verdict := faves.Verdict{ScaffoldMatch: true}
	if verdict.DEAControlled {
		return fmt.Errorf("scenario wants the direct-listing signal off")
	}
	s.observations = append(s.observations, compound.Observation{
		Name:              "scaffold-analog",
		Category:          compound.CategoryRegulated,
		ExpectedRegulated: true,
		ExpectedTier:      "I",
		DetectedRegulated: verdict.Regulated(),
		ScaffoldMatch:     verdict.ScaffoldMatch,
	})
	return nil
}

func (s *metricsScenarioState) givenApprovedWhitelisted(n int) error {
	s.add(n, func(i int) compound.Observation {
		return compound.Observation{
			Name:                fmt.Sprintf("approved-listed-%d", i),
			Category:            compound.CategoryApproved,
			DetectedWhitelisted: true,
		}
	})
	return nil
}

func (s *metricsScenarioState) givenApprovedNotWhitelisted(n int) error {
	s.add(n, func(i int) compound.Observation {
		return compound.Observation{
			Name:     fmt.Sprintf("approved-unlisted-%d", i),
			Category: compound.CategoryApproved,
		}
	})
	return nil
}

func (s *metricsScenarioState) givenFailedObservation(message string) error {
	s.observations = append(s.observations, compound.Observation{
		Name:              fmt.Sprintf("failed-%d", len(s.observations)),
		Category:          compound.CategoryRegulated,
		ExpectedRegulated: true,
		Error:             message,
	})
	return nil
}

func (s *metricsScenarioState) whenEvaluated() error {
	s.report = metrics.Evaluate(compound.ResultsSet{Observations: s.observations})
	s.evaluated = true
	return nil
}

func (s *metricsScenarioState) thenConfusionMatrix(tp, fn, tn, fp int) error {
	if !s.evaluated {
		return fmt.Errorf("results were not evaluated")
	}
	got := [4]int{s.report.TruePositives, s.report.FalseNegatives, s.report.TrueNegatives, s.report.FalsePositives}
	want := [4]int{tp, fn, tn, fp}
	if got != want {
		return fmt.Errorf("confusion matrix TP/FN/TN/FP: got %v, want %v", got, want)
	}
	return nil
}

func (s *metricsScenarioState) thenTotalTested(n int) error {
	if s.report.TotalTested != n {
		return fmt.Errorf("total tested: got %d, want %d", s.report.TotalTested, n)
	}
	return nil
}

func (s *metricsScenarioState) checkRate(name string, got, want float64) error {
	if !s.evaluated {
		return fmt.Errorf("results were not evaluated")
	}
	if math.Abs(got-want) > 1e-9 {
		return fmt.Errorf("%s: got %.4f, want %.4f", name, got, want)
	}
	return nil
}

func (s *metricsScenarioState) thenSensitivity(want float64) error {
	return s.checkRate("sensitivity", s.report.Sensitivity, want)
}

func (s *metricsScenarioState) thenSpecificity(want float64) error {
	return s.checkRate("specificity", s.report.Specificity, want)
}

func (s *metricsScenarioState) thenF1(want float64) error {
	return s.checkRate("f1", s.report.F1, want)
}

func (s *metricsScenarioState) thenAccuracy(want float64) error {
	return s.checkRate("accuracy", s.report.Accuracy, want)
}

func (s *metricsScenarioState) thenWhitelistRate(want float64) error {
	return s.checkRate("whitelist rate", s.report.WhitelistRate, want)
}

func (s *metricsScenarioState) thenEveryRateZero() error {
	rates := map[string]float64{
		"sensitivity":       s.report.Sensitivity,
		"specificity":       s.report.Specificity,
		"precision":         s.report.Precision,
		"f1":                s.report.F1,
		"accuracy":          s.report.Accuracy,
		"schedule accuracy": s.report.ScheduleAccuracy,
		"whitelist rate":    s.report.WhitelistRate,
	}
	for name, rate := range rates {
		if rate != 0 {
			return fmt.Errorf("%s: got %.4f, want 0", name, rate)
		}
	}
	return nil
}
