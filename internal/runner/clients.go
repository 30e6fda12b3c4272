package runner

import (
	"os"
	"strings"
	"time"

	"chembench/internal/faves"
	"chembench/internal/groundtruth"
	"chembench/internal/pubchem"
	"chembench/internal/ratelimit"
	"chembench/internal/spec"
)

// defaultLookupFactory builds the production PubChem client.
func defaultLookupFactory(cfg spec.Config) (groundtruth.Lookup, error) {
	pacers := ratelimit.BuildPacers(cfg)
	client := pubchem.NewClient(cfg.GroundTruth.BaseURL, time.Duration(cfg.GroundTruth.TimeoutMs)*time.Millisecond, pacers.GroundTruth, nil)
	return client.Lookup, nil
}

// defaultClassifyFactory builds the production compliance-service client.
func defaultClassifyFactory(cfg spec.Config, baseURL, apiKey string) (Classify, error) {
	pacers := ratelimit.BuildPacers(cfg)
	client, err := faves.NewClient(baseURL, apiKey, time.Duration(cfg.Classifier.TimeoutMs)*time.Millisecond, pacers.Classifier, nil)
	if err != nil {
		return nil, err
	}
	return client.Classify, nil
}

// resolveClassifier applies the override precedence for the classifier
// endpoint: flag over config for the base URL, flag over the configured
// environment variable for the API key.
func resolveClassifier(cfg spec.Config, params RunParams) (baseURL, apiKey string) {
	baseURL = strings.TrimSpace(params.APIURL)
	if baseURL == "" {
		baseURL = cfg.Classifier.BaseURL
	}
	apiKey = strings.TrimSpace(params.APIKey)
	if apiKey == "" && cfg.Classifier.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.Classifier.APIKeyEnv)
	}
	return baseURL, apiKey
}
