package spec

import (
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	body := `version: 1
benchmark:
  output_dir: "./results"
  workers: 4
ground_truth:
  base_url: "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
  taxonomy: "taxonomy.yml"
  timeout_ms: 10000
  requests_per_second: 5
classifier:
  base_url: "http://localhost:8000"
  api_key_env: "FAVES_API_KEY"
  timeout_ms: 30000
report:
  targets:
    sensitivity: 0.95
`
	cfg, err := ParseConfig([]byte(body))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version: %d", cfg.Version)
	}
	if cfg.Benchmark.Workers != 4 {
		t.Fatalf("unexpected workers: %d", cfg.Benchmark.Workers)
	}
	if cfg.GroundTruth.RequestsPerSecond != 5 {
		t.Fatalf("unexpected rps: %v", cfg.GroundTruth.RequestsPerSecond)
	}
	if cfg.Classifier.APIKeyEnv != "FAVES_API_KEY" {
		t.Fatalf("unexpected key env: %q", cfg.Classifier.APIKeyEnv)
	}
	if cfg.Report.Targets.Sensitivity != 0.95 {
		t.Fatalf("unexpected target: %v", cfg.Report.Targets.Sensitivity)
	}
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	body := `version: 1
unknown_section:
  key: value
`
	if _, err := ParseConfig([]byte(body)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	body := "version: 1\n---\nversion: 2\n"
	_, err := ParseConfig([]byte(body))
	if err == nil {
		t.Fatal("expected error for multiple documents")
	}
	if !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("unexpected error: %v", err)
	}
}
