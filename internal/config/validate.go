package config

import (
	"fmt"
	"os"
	"strings"

	"chembench/internal/spec"
)

// Validate checks a config for correctness and referenced files. Paths in the
// config are resolved against baseDir.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Benchmark.OutputDir) == "" {
		collector.add("benchmark.output_dir", "is required")
	}
	if cfg.Benchmark.Workers < 1 {
		collector.add("benchmark.workers", "must be at least 1")
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateGroundTruth(cfg, baseDir, collector.add)
	validateClassifier(cfg, collector.add)
	validateTargets(cfg.Report.Targets, collector.add)

	return collector.result()
}

// validateGroundTruth checks the structure-provider section and the taxonomy
// file reference.
func validateGroundTruth(cfg *spec.Config, baseDir string, add issueAdder) {
	if strings.TrimSpace(cfg.GroundTruth.BaseURL) == "" {
		add("ground_truth.base_url", "is required")
	}
	if cfg.GroundTruth.TimeoutMs < 0 {
		add("ground_truth.timeout_ms", "must not be negative")
	}
	if cfg.GroundTruth.RequestsPerSecond < 0 {
		add("ground_truth.requests_per_second", "must not be negative")
	}

	taxonomy := strings.TrimSpace(cfg.GroundTruth.Taxonomy)
	if taxonomy == "" {
		add("ground_truth.taxonomy", "is required")
		return
	}
	path := ResolvePath(baseDir, taxonomy)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		add("ground_truth.taxonomy", fmt.Sprintf("file %q does not exist", path))
		return
	}
	if err != nil {
		add("ground_truth.taxonomy", fmt.Sprintf("stat %q: %v", path, err))
		return
	}
	if info.IsDir() {
		add("ground_truth.taxonomy", fmt.Sprintf("%q is a directory", path))
	}
}

// validateClassifier checks the compliance-service section.
func validateClassifier(cfg *spec.Config, add issueAdder) {
	if strings.TrimSpace(cfg.Classifier.BaseURL) == "" {
		add("classifier.base_url", "is required")
	}
	if cfg.Classifier.TimeoutMs < 0 {
		add("classifier.timeout_ms", "must not be negative")
	}
	if cfg.Classifier.RequestsPerSecond < 0 {
		add("classifier.requests_per_second", "must not be negative")
	}
}

// validateTargets checks that every metric target is a valid rate.
func validateTargets(targets spec.TargetsConfig, add issueAdder) {
	for _, target := range []struct {
		field string
		value float64
	}{
		{"report.targets.sensitivity", targets.Sensitivity},
		{"report.targets.specificity", targets.Specificity},
		{"report.targets.precision", targets.Precision},
		{"report.targets.f1", targets.F1},
		{"report.targets.accuracy", targets.Accuracy},
		{"report.targets.schedule_accuracy", targets.ScheduleAccuracy},
		{"report.targets.whitelist_rate", targets.WhitelistRate},
	} {
		if target.value < 0 || target.value > 1 {
			add(target.field, "must be between 0 and 1")
		}
	}
}
