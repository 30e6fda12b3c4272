package config

import (
	"path/filepath"

	"chembench/internal/pubchem"
	"chembench/internal/spec"
)

// Defaults applied by Normalize when the config leaves a field unset.
const (
	DefaultWorkers             = 4
	DefaultClassifierURL       = "https://ai.novomcp.com"
	DefaultAPIKeyEnv           = "FAVES_API_KEY"
	DefaultLookupTimeoutMs     = 10000
	DefaultClassifyTimeoutMs   = 30000
	DefaultLookupRatePerSecond = 5
	DefaultClassifyRatePerSec  = 10
)

// defaultTargets are the pass thresholds the original benchmark reports
// against.
var defaultTargets = spec.TargetsConfig{
	Sensitivity:      0.95,
	Specificity:      0.99,
	Precision:        0.95,
	F1:               0.95,
	Accuracy:         0.97,
	ScheduleAccuracy: 0.90,
	WhitelistRate:    0.95,
}

// Normalize fills unset config fields with their defaults.
func Normalize(cfg *spec.Config) {
	if cfg.Benchmark.OutputDir == "" {
		cfg.Benchmark.OutputDir = DefaultOutputDir
	}
	if cfg.Benchmark.Workers == 0 {
		cfg.Benchmark.Workers = DefaultWorkers
	}
	if cfg.GroundTruth.BaseURL == "" {
		cfg.GroundTruth.BaseURL = pubchem.DefaultBaseURL
	}
	if cfg.GroundTruth.Taxonomy == "" {
		cfg.GroundTruth.Taxonomy = filepath.Join(ConfigDirName, TaxonomyFileName)
	}
	if cfg.GroundTruth.TimeoutMs == 0 {
		cfg.GroundTruth.TimeoutMs = DefaultLookupTimeoutMs
	}
	if cfg.GroundTruth.RequestsPerSecond == 0 {
		cfg.GroundTruth.RequestsPerSecond = DefaultLookupRatePerSecond
	}
	if cfg.Classifier.BaseURL == "" {
		cfg.Classifier.BaseURL = DefaultClassifierURL
	}
	if cfg.Classifier.APIKeyEnv == "" {
		cfg.Classifier.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.Classifier.TimeoutMs == 0 {
		cfg.Classifier.TimeoutMs = DefaultClassifyTimeoutMs
	}
	if cfg.Classifier.RequestsPerSecond == 0 {
		cfg.Classifier.RequestsPerSecond = DefaultClassifyRatePerSec
	}
	normalizeTargets(&cfg.Report.Targets)
}

// normalizeTargets fills unset metric targets from the defaults.
func normalizeTargets(targets *spec.TargetsConfig) {
	if targets.Sensitivity == 0 {
		targets.Sensitivity = defaultTargets.Sensitivity
	}
	if targets.Specificity == 0 {
		targets.Specificity = defaultTargets.Specificity
	}
	if targets.Precision == 0 {
		targets.Precision = defaultTargets.Precision
	}
	if targets.F1 == 0 {
		targets.F1 = defaultTargets.F1
	}
	if targets.Accuracy == 0 {
		targets.Accuracy = defaultTargets.Accuracy
	}
	if targets.ScheduleAccuracy == 0 {
		targets.ScheduleAccuracy = defaultTargets.ScheduleAccuracy
	}
	if targets.WhitelistRate == 0 {
		targets.WhitelistRate = defaultTargets.WhitelistRate
	}
}
