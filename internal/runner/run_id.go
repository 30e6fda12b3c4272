package runner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// runIDSuffixBytes is the number of random bytes appended to a run ID.
const runIDSuffixBytes = 6

// NewRunID returns a fresh run identifier based on the current UTC time.
func NewRunID() (string, error) {
	return NewRunIDWithRand(time.Now(), rand.Reader)
}

// NewRunIDWithRand builds a run identifier from an explicit clock reading and
// randomness source.
func NewRunIDWithRand(now time.Time, r io.Reader) (string, error) {
	suffix := make([]byte, runIDSuffixBytes)
	if _, err := io.ReadFull(r, suffix); err != nil {
		return "", fmt.Errorf("generate run id suffix: %w", err)
	}
	return FormatRunID(now, suffix), nil
}

// FormatRunID renders a run identifier as a sortable UTC timestamp plus a hex
// suffix, safe for use as a directory name.
func FormatRunID(now time.Time, suffix []byte) string {
	return fmt.Sprintf("%s-%s", now.UTC().Format("20060102T150405Z"), hex.EncodeToString(suffix))
}

// ensureRunID resolves the run identifier, generating one when the supplied
// generator is nil.
func ensureRunID(generate func() (string, error)) (string, error) {
	if generate == nil {
		generate = NewRunID
	}
	runID, err := generate()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	if strings.TrimSpace(runID) == "" {
		return "", fmt.Errorf("run id is empty")
	}
	return runID, nil
}
