package taxonomy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads, parses, and validates a taxonomy file. The format is chosen
// by extension: .json parses as JSON, anything else as YAML.
func LoadFile(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy: %w", err)
	}
	tax, err := parse(data, path)
	if err != nil {
		return Taxonomy{}, err
	}
	normalized, err := Normalize(tax)
	if err != nil {
		return Taxonomy{}, err
	}
	return normalized, nil
}

func parse(data []byte, path string) (Taxonomy, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (Taxonomy, error) {
	var tax Taxonomy
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&tax); err != nil {
		return Taxonomy{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Taxonomy{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Taxonomy{}, fmt.Errorf("parse json: %w", err)
	}
	return tax, nil
}

func parseYAML(data []byte) (Taxonomy, error) {
	var tax Taxonomy
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&tax); err != nil {
		return Taxonomy{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Taxonomy{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Taxonomy{}, fmt.Errorf("parse yaml: %w", err)
	}
	return tax, nil
}
