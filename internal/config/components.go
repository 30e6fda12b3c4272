package config

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ScaffoldConfig renders the default config file for a new project.
func ScaffoldConfig(outputDir string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, scaffoldConfigFormat, outputDir)
		return err
	})
}

const scaffoldConfigFormat = `version: 1

benchmark:
  output_dir: %q
  workers: 4

ground_truth:
  base_url: "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
  taxonomy: ".chembench/taxonomy.yml"
  timeout_ms: 10000
  requests_per_second: 5

classifier:
  base_url: "https://ai.novomcp.com"
  api_key_env: "FAVES_API_KEY"
  timeout_ms: 30000
  requests_per_second: 10

report:
  targets:
    sensitivity: 0.95
    specificity: 0.99
    precision: 0.95
    f1: 0.95
    accuracy: 0.97
    schedule_accuracy: 0.90
    whitelist_rate: 0.95
`
