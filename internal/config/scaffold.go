package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// defaultTaxonomy holds the built-in taxonomy written on init.
//
//go:embed taxonomy.yml
var defaultTaxonomy []byte

// Scaffold writes a default config file and the built-in taxonomy next to it.
// It refuses to overwrite either file.
func Scaffold(configPath, outputDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	baseDir := filepath.Dir(configPath)
	taxonomyPath := filepath.Join(baseDir, TaxonomyFileName)
	if info, err := os.Stat(taxonomyPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("taxonomy path %q is a directory", taxonomyPath)
		}
		return fmt.Errorf("taxonomy file already exists at %q", taxonomyPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat taxonomy file: %w", err)
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content, err := renderScaffoldConfig(outputDir)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(taxonomyPath, defaultTaxonomy, 0o644); err != nil {
		return fmt.Errorf("write taxonomy file: %w", err)
	}
	return nil
}
