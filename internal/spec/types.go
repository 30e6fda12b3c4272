package spec

// Config is the benchmark configuration loaded from .chembench/config.yml.
type Config struct {
	Version     int               `yaml:"version"`
	Benchmark   BenchmarkConfig   `yaml:"benchmark"`
	GroundTruth GroundTruthConfig `yaml:"ground_truth"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Report      ReportConfig      `yaml:"report"`
}

// BenchmarkConfig controls run output and concurrency.
type BenchmarkConfig struct {
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`
}

// GroundTruthConfig describes the structure-lookup provider and the taxonomy
// file the ground truth is built from.
type GroundTruthConfig struct {
	BaseURL           string  `yaml:"base_url"`
	Taxonomy          string  `yaml:"taxonomy"`
	TimeoutMs         int     `yaml:"timeout_ms"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// ClassifierConfig describes the compliance service under test.
type ClassifierConfig struct {
	BaseURL           string  `yaml:"base_url"`
	APIKeyEnv         string  `yaml:"api_key_env"`
	TimeoutMs         int     `yaml:"timeout_ms"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// ReportConfig carries the pass/fail targets printed in reports.
type ReportConfig struct {
	Targets TargetsConfig `yaml:"targets"`
}

// TargetsConfig holds the target value for each headline metric. Zero means
// the built-in default applies.
type TargetsConfig struct {
	Sensitivity      float64 `yaml:"sensitivity"`
	Specificity      float64 `yaml:"specificity"`
	Precision        float64 `yaml:"precision"`
	F1               float64 `yaml:"f1"`
	Accuracy         float64 `yaml:"accuracy"`
	ScheduleAccuracy float64 `yaml:"schedule_accuracy"`
	WhitelistRate    float64 `yaml:"whitelist_rate"`
}
