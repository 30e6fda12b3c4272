//go:build cucumber

package cucumber

import (
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestMetricsScenarios runs the metrics evaluation feature.
func TestMetricsScenarios(t *testing.T) {
	runFeature(t, "metrics-evaluation", "metrics-evaluation.feature", InitializeMetricsScenario)
}

// TestCLIScenarios runs the validate/run CLI feature.
func TestCLIScenarios(t *testing.T) {
	runFeature(t, "cli-validate-run", "cli-validate-run.feature", InitializeCLIScenario)
}

func runFeature(t *testing.T, name, file string, initializer func(*godog.ScenarioContext)) {
	t.Helper()
	featurePath := filepath.Join("..", "..", "spec", "features", file)
	suite := godog.TestSuite{
		Name:                name,
		ScenarioInitializer: initializer,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}
