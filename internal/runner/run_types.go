package runner

import (
	"context"
	"time"

	"chembench/internal/faves"
	"chembench/internal/groundtruth"
	"chembench/internal/spec"
)

// Classify submits one structure to the compliance service under test.
type Classify func(ctx context.Context, structureID string) (faves.Verdict, error)

// LookupFactory builds the structure-lookup client for a run.
type LookupFactory func(cfg spec.Config) (groundtruth.Lookup, error)

// ClassifyFactory builds the classification client for a run. The base URL
// and API key arrive already resolved: flags override the config, and the
// key falls back to the configured environment variable.
type ClassifyFactory func(cfg spec.Config, baseURL, apiKey string) (Classify, error)

// RunDependencies carries the injectable collaborators of a run. Zero values
// select the production defaults.
type RunDependencies struct {
	LookupFactory   LookupFactory
	ClassifyFactory ClassifyFactory
	RunID           func() (string, error)
	Now             func() time.Time
	Observer        RunObserver
}

// RunParams configures a single benchmark run.
type RunParams struct {
	// Root is the project root, the directory holding .chembench.
	Root string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
	// APIURL overrides the configured classifier base URL when set.
	APIURL string
	// APIKey overrides the key from the configured environment variable.
	APIKey string
	// Workers overrides the configured classification concurrency when
	// positive.
	Workers int
	// SkipFetch reuses the saved ground-truth table instead of rebuilding it.
	SkipFetch bool

	Deps RunDependencies
}
